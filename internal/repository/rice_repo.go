package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiceRepository interface {
	Create(rice *model.Rice) error
	FindAll() ([]model.Rice, error)
	FindByID(id uuid.UUID) (*model.Rice, error)
	FindByGodown(godownID uuid.UUID) ([]model.Rice, error)
	Update(rice *model.Rice) error
	ReserveAndDeduct(riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error)
	StockSummary() ([]RiceTypeSummary, BagTotals, error)
	TotalQuantityByStatus(status model.RiceStatus) (float64, error)
	TotalQuantityByType() (map[string]float64, error)
}

// RiceTypeSummary aggregates bulk kg and total bags per rice type.
type RiceTypeSummary struct {
	RiceType      string  `json:"rice_type"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalBags     int     `json:"total_bags"`
}

// BagTotals holds system-wide bag counts per size.
type BagTotals struct {
	Bags5Kg  int `json:"bags_5kg"`
	Bags10Kg int `json:"bags_10kg"`
	Bags25Kg int `json:"bags_25kg"`
	Bags75Kg int `json:"bags_75kg"`
}

type riceRepo struct {
	db *gorm.DB
}

func NewRiceRepo(db *gorm.DB) RiceRepository {
	return &riceRepo{db}
}

func (r *riceRepo) Create(rice *model.Rice) error {
	return r.db.Create(rice).Error
}

func (r *riceRepo) FindAll() ([]model.Rice, error) {
	var rice []model.Rice
	err := r.db.Preload("Godown").Order("created_at DESC").Find(&rice).Error
	return rice, err
}

func (r *riceRepo) FindByID(id uuid.UUID) (*model.Rice, error) {
	var rice model.Rice
	if err := r.db.Preload("Godown").First(&rice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRiceStockNotFound
		}
		return nil, err
	}
	return &rice, nil
}

func (r *riceRepo) FindByGodown(godownID uuid.UUID) ([]model.Rice, error) {
	var rice []model.Rice
	err := r.db.Where("godown_id = ?", godownID).Find(&rice).Error
	return rice, err
}

func (r *riceRepo) Update(rice *model.Rice) error {
	return r.db.Save(rice).Error
}

// deductRiceLocked locks the SKU matching (riceType, brand) that is still
// sellable, runs the two-axis availability check and writes the deduction.
// Callers provide the transaction; the lock is held until it commits, so two
// concurrent deductions cannot both pass the check against the same snapshot.
func deductRiceLocked(tx *gorm.DB, riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error) {
	var rice model.Rice
	if err := lockForUpdate(tx).
		Where("rice_type = ? AND rice_name = ? AND status IN ?", riceType, brand,
			[]model.RiceStatus{model.RiceReady, model.RiceInProduction}).
		First(&rice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRiceStockNotFound
		}
		return nil, err
	}

	if err := rice.Deduct(size, quantityBags); err != nil {
		return nil, err
	}

	if err := tx.Save(&rice).Error; err != nil {
		return nil, err
	}
	return &rice, nil
}

// ReserveAndDeduct is the stand-alone form of the ledger deduction, running
// the locked check-then-commit in its own transaction.
func (r *riceRepo) ReserveAndDeduct(riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error) {
	var rice *model.Rice

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rice, err = deductRiceLocked(tx, riceType, brand, size, quantityBags)
		return err
	})

	if err != nil {
		return nil, err
	}
	return rice, nil
}

func (r *riceRepo) StockSummary() ([]RiceTypeSummary, BagTotals, error) {
	var byType []RiceTypeSummary
	err := r.db.Model(&model.Rice{}).
		Select(`rice_type,
			COALESCE(SUM(quantity), 0) as total_quantity,
			COALESCE(SUM(bags5_kg + bags10_kg + bags25_kg + bags75_kg), 0) as total_bags`).
		Group("rice_type").
		Scan(&byType).Error
	if err != nil {
		return nil, BagTotals{}, err
	}

	var totals BagTotals
	err = r.db.Model(&model.Rice{}).
		Select(`COALESCE(SUM(bags5_kg), 0) as bags5_kg,
			COALESCE(SUM(bags10_kg), 0) as bags10_kg,
			COALESCE(SUM(bags25_kg), 0) as bags25_kg,
			COALESCE(SUM(bags75_kg), 0) as bags75_kg`).
		Scan(&totals).Error
	return byType, totals, err
}

func (r *riceRepo) TotalQuantityByStatus(status model.RiceStatus) (float64, error) {
	var total float64
	err := r.db.Model(&model.Rice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *riceRepo) TotalQuantityByType() (map[string]float64, error) {
	var rows []struct {
		RiceType string
		Total    float64
	}
	err := r.db.Model(&model.Rice{}).
		Select("rice_type, COALESCE(SUM(quantity), 0) as total").
		Group("rice_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.RiceType] = row.Total
	}
	return totals, nil
}
