package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCheque       PaymentMethod = "cheque"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
	MethodOther        PaymentMethod = "other"
)

// Payment is an immutable audit row for one settlement event against exactly
// one of a Sale or an Invoice. It is written in the same database transaction
// as the target's paid-amount update.
type Payment struct {
	BaseModel
	SaleID    *uuid.UUID `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	Sale      *Sale      `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
	InvoiceID *uuid.UUID `gorm:"type:uuid;index" json:"invoice_id,omitempty"`
	Invoice   *Invoice   `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
	DealerID  string     `gorm:"type:varchar(20)" json:"dealer_id,omitempty"` // set for invoice payments

	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null;default:'cash'" json:"payment_method"`
	ReferenceNumber string          `gorm:"type:varchar(100)" json:"reference_number"`
	Notes           string          `gorm:"type:text" json:"notes"`

	ReceivedByUserID *string `gorm:"type:varchar(255)" json:"received_by_user_id,omitempty"`
	ReceivedByUser   *User   `gorm:"foreignKey:ReceivedByUserID;references:ID" json:"received_by_user,omitempty"`
}
