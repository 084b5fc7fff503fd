package model

import (
	"time"

	"github.com/google/uuid"
)

// Paddy is one inbound paddy delivery. Creating it is coupled to the godown
// capacity check: the record only exists if the godown accepted the weight.
type Paddy struct {
	BaseModel
	PaddyType       string    `gorm:"type:varchar(50);not null" json:"paddy_type" validate:"required,oneof=Basmati 'Sona Masoori' Jasmine 'Brown Rice' Parboiled Other"`
	Quantity        float64   `gorm:"not null" json:"quantity" validate:"required,gt=0"` // number of loads/units
	Weight          float64   `gorm:"not null" json:"weight" validate:"required,gt=0"`   // kilograms
	QualityGrade    string    `gorm:"type:varchar(5);not null" json:"quality_grade" validate:"required,oneof=A+ A B C"`
	MoisturePercent float64   `gorm:"not null" json:"moisture_percent" validate:"gte=0,lte=100"`
	SellerName      string    `gorm:"type:varchar(255);not null" json:"seller_name" validate:"required"`
	SellerContact   string    `gorm:"type:varchar(30);not null" json:"seller_contact" validate:"required"`
	VehicleNumber   string    `gorm:"type:varchar(30);not null" json:"vehicle_number" validate:"required"`
	Location        string    `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	GodownID        uuid.UUID `gorm:"type:uuid;not null" json:"godown_id" validate:"uuid_required"`
	Godown          *Godown   `gorm:"foreignKey:GodownID" json:"godown,omitempty" validate:"-"`
	Date            time.Time `json:"date"`

	AddedByUserID *string `gorm:"type:varchar(255)" json:"added_by_user_id,omitempty"`
	AddedByUser   *User   `gorm:"foreignKey:AddedByUserID;references:ID" json:"added_by_user,omitempty" validate:"-"`
}
