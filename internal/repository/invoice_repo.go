package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *model.Invoice) error
	FindAll() ([]model.Invoice, error)
	FindByID(id uuid.UUID) (*model.Invoice, error)
	FindByDealerID(dealerID string) ([]model.Invoice, error)
	FindByDealerRef(dealerRef uuid.UUID, limit int) ([]model.Invoice, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

func (r *invoiceRepo) Create(invoice *model.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *invoiceRepo) FindAll() ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Dealer").Preload("Order").Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByID(id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.Preload("Dealer").Preload("Order").First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) FindByDealerID(dealerID string) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Order").Where("dealer_id = ?", dealerID).
		Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByDealerRef(dealerRef uuid.UUID, limit int) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Where("dealer_ref = ?", dealerRef).
		Order("created_at DESC").Limit(limit).Find(&invoices).Error
	return invoices, err
}
