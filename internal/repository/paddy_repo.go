package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaddyRepository interface {
	FindAll() ([]model.Paddy, error)
	FindByGodown(godownID uuid.UUID) ([]model.Paddy, error)
	Record(paddy *model.Paddy) error
	SummaryByType() ([]PaddyTypeSummary, float64, error)
	TotalWeight() (float64, error)
}

// PaddyTypeSummary aggregates intake per paddy type.
type PaddyTypeSummary struct {
	PaddyType     string  `json:"paddy_type"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalWeight   float64 `json:"total_weight"`
}

type paddyRepo struct {
	db *gorm.DB
}

func NewPaddyRepo(db *gorm.DB) PaddyRepository {
	return &paddyRepo{db}
}

func (r *paddyRepo) FindAll() ([]model.Paddy, error) {
	var paddies []model.Paddy
	err := r.db.Preload("Godown").Preload("AddedByUser").Order("date DESC").Find(&paddies).Error
	return paddies, err
}

func (r *paddyRepo) FindByGodown(godownID uuid.UUID) ([]model.Paddy, error) {
	var paddies []model.Paddy
	err := r.db.Where("godown_id = ?", godownID).Order("date DESC").Find(&paddies).Error
	return paddies, err
}

// Record commits the godown fill-level bump and the intake row together. The
// godown row is locked first; if the delivery would overflow capacity nothing
// is written and the godown reads back at its pre-attempt value.
func (r *paddyRepo) Record(paddy *model.Paddy) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var godown model.Godown
		if err := lockForUpdate(tx).
			First(&godown, "id = ?", paddy.GodownID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrGodownNotFound
			}
			return err
		}

		if err := godown.Receive(paddy.Weight); err != nil {
			return err
		}
		if err := tx.Save(&godown).Error; err != nil {
			return err
		}

		return tx.Create(paddy).Error
	})
}

func (r *paddyRepo) SummaryByType() ([]PaddyTypeSummary, float64, error) {
	var byType []PaddyTypeSummary
	err := r.db.Model(&model.Paddy{}).
		Select(`paddy_type,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(weight), 0) as total_weight`).
		Group("paddy_type").
		Scan(&byType).Error
	if err != nil {
		return nil, 0, err
	}

	total, err := r.TotalWeight()
	return byType, total, err
}

func (r *paddyRepo) TotalWeight() (float64, error) {
	var total float64
	err := r.db.Model(&model.Paddy{}).
		Select("COALESCE(SUM(weight), 0)").
		Scan(&total).Error
	return total, err
}
