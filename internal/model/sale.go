package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleStatus string

const (
	SalePending    SaleStatus = "pending"
	SaleDispatched SaleStatus = "dispatched"
	SaleDelivered  SaleStatus = "delivered"
)

// Sale is a direct cash-counter transaction with an end customer, distinct
// from the dealer order/invoice chain.
type Sale struct {
	BaseModel
	CustomerName    string `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerContact string `gorm:"type:varchar(30);not null" json:"customer_contact" validate:"required"`
	CustomerAddress string `gorm:"type:varchar(255)" json:"customer_address"`
	RiceType        string `gorm:"type:varchar(50);not null" json:"rice_type" validate:"required"`

	Quantity    float64         `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Rate        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"rate"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_amount"`

	VehicleNumber string     `gorm:"type:varchar(30)" json:"vehicle_number"`
	DriverName    string     `gorm:"type:varchar(255)" json:"driver_name"`
	Destination   string     `gorm:"type:varchar(255)" json:"destination"`
	DispatchDate  time.Time  `json:"dispatch_date"`
	Status        SaleStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaidAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"paid_amount"`
	BalanceAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"balance_amount"`

	SoldByUserID *string `gorm:"type:varchar(255)" json:"sold_by_user_id,omitempty"`
	SoldByUser   *User   `gorm:"foreignKey:SoldByUserID;references:ID" json:"sold_by_user,omitempty" validate:"-"`
}

// Recompute derives BalanceAmount and PaymentStatus from TotalAmount and
// PaidAmount. Unlike the invoice rule, a paid amount of exactly zero always
// yields pending.
func (s *Sale) Recompute() {
	s.BalanceAmount = s.TotalAmount.Sub(s.PaidAmount)
	switch {
	case s.PaidAmount.IsZero():
		s.PaymentStatus = PaymentPending
	case s.PaidAmount.LessThan(s.TotalAmount):
		s.PaymentStatus = PaymentPartial
	default:
		s.PaymentStatus = PaymentPaid
	}
}

// BeforeSave keeps the derived fields consistent on every persist, not only
// when a payment is recorded.
func (s *Sale) BeforeSave(tx *gorm.DB) error {
	s.Recompute()
	return nil
}
