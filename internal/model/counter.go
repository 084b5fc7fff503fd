package model

// Counter is a named sequence row. Sequential human-readable ids (DLR0001,
// INV-0001) are assigned from here with a locked increment instead of a
// count-then-format, so concurrent creations cannot collide.
type Counter struct {
	Name  string `gorm:"type:varchar(50);primaryKey" json:"name"`
	Value int64  `gorm:"not null;default:0" json:"value"`
}

// Counter names in use.
const (
	CounterDealer  = "dealer"
	CounterInvoice = "invoice"
)
