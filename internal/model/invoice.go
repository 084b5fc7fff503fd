package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Invoice bills one dealer for one order. InvoiceNumber (INV-0001 style) is
// counter-assigned at creation and immutable.
type Invoice struct {
	BaseModel
	DealerRef     uuid.UUID    `gorm:"type:uuid;not null;index" json:"dealer_ref"`
	Dealer        *Dealer      `gorm:"foreignKey:DealerRef" json:"dealer,omitempty"`
	DealerID      string       `gorm:"type:varchar(20);not null;index" json:"dealer_id"`
	OrderID       uuid.UUID    `gorm:"type:uuid;not null" json:"order_id"`
	Order         *DealerOrder `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	InvoiceNumber string       `gorm:"type:varchar(20);uniqueIndex;not null" json:"invoice_number"`

	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaidAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"paid_amount"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	Notes         string          `gorm:"type:text" json:"notes"`
}

// ApplyPayment adds amount to PaidAmount and recomputes PaymentStatus.
// The rule never steps the status backwards: once partial it can only move to
// paid, which is the observed billing behavior and differs from the Sale rule
// on purpose.
func (i *Invoice) ApplyPayment(amount decimal.Decimal) {
	i.PaidAmount = i.PaidAmount.Add(amount)
	if i.PaidAmount.GreaterThanOrEqual(i.Amount) {
		i.PaymentStatus = PaymentPaid
	} else if i.PaidAmount.GreaterThan(decimal.Zero) {
		i.PaymentStatus = PaymentPartial
	}
}
