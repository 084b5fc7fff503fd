package model

type DealerStatus string

const (
	DealerActive   DealerStatus = "active"
	DealerInactive DealerStatus = "inactive"
)

// Dealer is a wholesale buyer account. Dealers are never hard-deleted, only
// flipped to inactive, so historical orders and invoices keep resolving.
type Dealer struct {
	BaseModel
	DealerID      string       `gorm:"type:varchar(20);uniqueIndex;not null" json:"dealer_id"` // DLR0001 style, counter-assigned
	DealerName    string       `gorm:"type:varchar(255);not null" json:"dealer_name" validate:"required"`
	BusinessName  string       `gorm:"type:varchar(255);not null" json:"business_name" validate:"required"`
	ContactNumber string       `gorm:"type:varchar(30);not null" json:"contact_number" validate:"required"`
	Location      string       `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	GstNumber     string       `gorm:"type:varchar(30)" json:"gst_number"`
	Status        DealerStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}

// IsActive reports whether the dealer may place orders.
func (d *Dealer) IsActive() bool {
	return d.Status == DealerActive
}
