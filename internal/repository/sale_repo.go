package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	Save(sale *model.Sale) error
	FindRecent(limit int) ([]model.Sale, error)
	PaymentSummary() (*PaymentSummary, error)
	Ledger() ([]LedgerEntry, error)
	CountOutstanding() (int64, error)
}

// PaymentSummary aggregates receivables across all sales.
type PaymentSummary struct {
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalReceived   decimal.Decimal `json:"total_received"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	PaidCount       int64           `json:"paid_count"`
	PartialCount    int64           `json:"partial_count"`
	PendingCount    int64           `json:"pending_count"`
}

// LedgerEntry is one row of the per-customer receivables rollup.
type LedgerEntry struct {
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
	Paid     decimal.Decimal `json:"paid"`
	Balance  decimal.Decimal `json:"balance"`
	Status   string          `json:"status"`
	Date     string          `json:"date"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("SoldByUser").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("SoldByUser").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSaleNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Save(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) FindRecent(limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) PaymentSummary() (*PaymentSummary, error) {
	var summary PaymentSummary

	err := r.db.Model(&model.Sale{}).
		Select(`COALESCE(SUM(total_amount), 0) as total_receivable,
			COALESCE(SUM(paid_amount), 0) as total_received,
			COALESCE(SUM(balance_amount), 0) as total_pending`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	counts := map[model.PaymentStatus]*int64{
		model.PaymentPaid:    &summary.PaidCount,
		model.PaymentPartial: &summary.PartialCount,
		model.PaymentPending: &summary.PendingCount,
	}
	for status, dst := range counts {
		if err := r.db.Model(&model.Sale{}).
			Where("payment_status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	return &summary, nil
}

func (r *saleRepo) Ledger() ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := r.db.Model(&model.Sale{}).
		Select(`customer_name as customer,
			total_amount as amount,
			paid_amount as paid,
			balance_amount as balance,
			payment_status as status,
			TO_CHAR(created_at, 'YYYY-MM-DD') as date`).
		Order("customer_name ASC, created_at DESC").
		Scan(&entries).Error
	return entries, err
}

func (r *saleRepo) CountOutstanding() (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).
		Where("payment_status IN ?", []model.PaymentStatus{model.PaymentPending, model.PaymentPartial}).
		Count(&count).Error
	return count, err
}
