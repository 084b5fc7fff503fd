package model

import (
	"time"

	"github.com/google/uuid"
)

// BagSize is one of the four packaging units rice is bagged into.
type BagSize string

const (
	Bag5Kg  BagSize = "5kg"
	Bag10Kg BagSize = "10kg"
	Bag25Kg BagSize = "25kg"
	Bag75Kg BagSize = "75kg"
)

// BagSizes lists every recognized size, in ascending weight order.
var BagSizes = []BagSize{Bag5Kg, Bag10Kg, Bag25Kg, Bag75Kg}

// WeightKg returns the fixed per-bag weight. ok is false for an
// unrecognized size; callers must treat that as a validation failure.
func (b BagSize) WeightKg() (float64, bool) {
	switch b {
	case Bag5Kg:
		return 5, true
	case Bag10Kg:
		return 10, true
	case Bag25Kg:
		return 25, true
	case Bag75Kg:
		return 75, true
	}
	return 0, false
}

type RiceStatus string

const (
	RiceInProduction RiceStatus = "in_production"
	RiceReady        RiceStatus = "ready"
	RiceSold         RiceStatus = "sold"
)

// Rice is one sellable SKU identified by (RiceType, RiceName). Bulk kilograms
// and per-size bag counts are tracked independently; fulfilment checks and
// deducts both.
type Rice struct {
	BaseModel
	RiceName string `gorm:"type:varchar(255);not null;index:idx_rice_sku" json:"rice_name" validate:"required"`
	RiceType string `gorm:"type:varchar(50);not null;index:idx_rice_sku" json:"rice_type" validate:"required,oneof=Basmati 'Sona Masoori' Jasmine 'Brown Rice' Parboiled Other"`

	// Bulk stock in kilograms.
	Quantity float64 `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`

	// Pre-packed bag counts. The size enum is closed, so these are explicit
	// columns rather than an open map; a missing size is simply 0.
	Bags5Kg  int `gorm:"not null;default:0" json:"bags_5kg"`
	Bags10Kg int `gorm:"not null;default:0" json:"bags_10kg"`
	Bags25Kg int `gorm:"not null;default:0" json:"bags_25kg"`
	Bags75Kg int `gorm:"not null;default:0" json:"bags_75kg"`

	GodownID       uuid.UUID  `gorm:"type:uuid;not null" json:"godown_id" validate:"uuid_required"`
	Godown         *Godown    `gorm:"foreignKey:GodownID" json:"godown,omitempty" validate:"-"`
	ProductionDate time.Time  `json:"production_date"`
	Status         RiceStatus `gorm:"type:varchar(20);not null;default:'ready'" json:"status"`
}

// BagCount returns the bag count for a size (0 for an unknown size).
func (r *Rice) BagCount(size BagSize) int {
	switch size {
	case Bag5Kg:
		return r.Bags5Kg
	case Bag10Kg:
		return r.Bags10Kg
	case Bag25Kg:
		return r.Bags25Kg
	case Bag75Kg:
		return r.Bags75Kg
	}
	return 0
}

func (r *Rice) setBagCount(size BagSize, count int) {
	switch size {
	case Bag5Kg:
		r.Bags5Kg = count
	case Bag10Kg:
		r.Bags10Kg = count
	case Bag25Kg:
		r.Bags25Kg = count
	case Bag75Kg:
		r.Bags75Kg = count
	}
}

// TotalBags sums the bag counts across all four sizes.
func (r *Rice) TotalBags() int {
	return r.Bags5Kg + r.Bags10Kg + r.Bags25Kg + r.Bags75Kg
}

// Deduct removes quantityBags pre-packed bags of the given size plus the
// matching bulk kilograms. Availability is checked on both axes before either
// field is touched: enough bulk kg does not imply enough packed bags of the
// requested size, nor the reverse. On ErrInsufficientStock the receiver is
// unchanged.
func (r *Rice) Deduct(size BagSize, quantityBags int) error {
	weight, ok := size.WeightKg()
	if !ok {
		return ErrInvalidBagSize
	}
	neededKg := weight * float64(quantityBags)

	if r.BagCount(size) < quantityBags || r.Quantity < neededKg {
		return ErrInsufficientStock
	}

	r.setBagCount(size, r.BagCount(size)-quantityBags)
	r.Quantity -= neededKg
	return nil
}
