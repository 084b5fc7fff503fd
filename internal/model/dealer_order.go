package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderApproved   OrderStatus = "approved"
	OrderRejected   OrderStatus = "rejected"
	OrderDispatched OrderStatus = "dispatched"
	OrderDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderDispatched, OrderDelivered:
		return true
	}
	return false
}

// statusTransitions is the set of transitions a plain status write may make.
// pending->approved is deliberately absent: approval must go through the
// approve operation so inventory is deducted exactly once.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderRejected},
	OrderApproved:   {OrderDispatched},
	OrderDispatched: {OrderDelivered},
}

// CanTransition reports whether a status write from -> to is allowed.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DealerOrder is a dealer's request for quantityBags bags of one size of a
// given (riceType, brand) SKU. TotalQuantityKg is derived once at creation
// and never changes afterwards.
type DealerOrder struct {
	BaseModel
	DealerRef    uuid.UUID `gorm:"type:uuid;not null;index" json:"dealer_ref"`
	Dealer       *Dealer   `gorm:"foreignKey:DealerRef" json:"dealer,omitempty"`
	DealerID     string    `gorm:"type:varchar(20);not null;index" json:"dealer_id"` // human-readable DLR id, denormalized
	RiceType     string    `gorm:"type:varchar(50);not null" json:"rice_type"`
	Brand        string    `gorm:"type:varchar(255);not null" json:"brand"`
	BagSize      BagSize   `gorm:"type:varchar(10);not null" json:"bag_size"`
	QuantityBags int       `gorm:"not null" json:"quantity_bags"`

	// Derived at creation: bag weight * quantityBags. Immutable.
	TotalQuantityKg float64 `gorm:"not null" json:"total_quantity_kg"`

	// Pricing happens at invoice time; zero until then.
	RatePerKg   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"rate_per_kg"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total_amount"`

	Status OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedByUserID *string    `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	ApprovedByID    *string    `gorm:"type:varchar(255)" json:"approved_by_id,omitempty"`
	ApprovedBy      *User      `gorm:"foreignKey:ApprovedByID;references:ID" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
}
