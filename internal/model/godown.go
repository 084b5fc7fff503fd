package model

type StockType string

const (
	StockPaddy StockType = "paddy"
	StockRice  StockType = "rice"
	StockMixed StockType = "mixed"
)

// Godown is a warehouse with a hard capacity ceiling. CurrentStock may never
// exceed Capacity; every intake goes through Receive.
type Godown struct {
	BaseModel
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	Capacity     float64   `gorm:"not null" json:"capacity" validate:"required,gt=0"`
	CurrentStock float64   `gorm:"not null;default:0" json:"current_stock" validate:"gte=0"`
	StockType    StockType `gorm:"type:varchar(20);not null;default:'mixed'" json:"stock_type"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}

// Receive adds weight to the fill level, failing with ErrCapacityExceeded
// before CurrentStock is mutated when the intake would overflow the godown.
func (g *Godown) Receive(weight float64) error {
	newStock := g.CurrentStock + weight
	if newStock > g.Capacity {
		return ErrCapacityExceeded
	}
	g.CurrentStock = newStock
	return nil
}

// CapacityPercent reports the fill level as a percentage of capacity.
func (g *Godown) CapacityPercent() float64 {
	if g.Capacity <= 0 {
		return 0
	}
	return (g.CurrentStock / g.Capacity) * 100
}
