package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	FindAll() ([]model.Payment, error)
	FindByID(id uuid.UUID) (*model.Payment, error)
	Record(payment *model.Payment) error
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) FindAll() ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Preload("Sale").Preload("Invoice").Preload("ReceivedByUser").
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.Preload("Sale").Preload("Invoice").Preload("ReceivedByUser").
		First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Record writes the audit row and updates the target's paid amount in one
// transaction; a failed target update rolls the payment row back too. The
// target row is locked so concurrent settlements of the same sale or invoice
// serialize instead of clobbering each other's paid amount.
func (r *paymentRepo) Record(payment *model.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		switch {
		case payment.SaleID != nil:
			var sale model.Sale
			if err := lockForUpdate(tx).
				First(&sale, "id = ?", *payment.SaleID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return model.ErrSaleNotFound
				}
				return err
			}
			sale.PaidAmount = sale.PaidAmount.Add(payment.Amount)
			// BeforeSave recomputes balance and payment status
			if err := tx.Save(&sale).Error; err != nil {
				return err
			}

		case payment.InvoiceID != nil:
			var invoice model.Invoice
			if err := lockForUpdate(tx).
				First(&invoice, "id = ?", *payment.InvoiceID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return model.ErrInvoiceNotFound
				}
				return err
			}
			invoice.ApplyPayment(payment.Amount)
			if err := tx.Save(&invoice).Error; err != nil {
				return err
			}
			payment.DealerID = invoice.DealerID

		default:
			return model.ErrPaymentTargetRequired
		}

		return tx.Create(payment).Error
	})
}
