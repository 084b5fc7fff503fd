package repository

import (
	"errors"
	"time"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.DealerOrder) error
	FindByID(id uuid.UUID) (*model.DealerOrder, error)
	FindAll() ([]model.DealerOrder, error)
	FindByDealerID(dealerID string) ([]model.DealerOrder, error)
	FindSettledByDealerID(dealerID string) ([]model.DealerOrder, error)
	FindByDealerRef(dealerRef uuid.UUID, limit int) ([]model.DealerOrder, error)
	Save(order *model.DealerOrder) error
	Approve(orderID uuid.UUID, approverID string) (*model.DealerOrder, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.DealerOrder) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.DealerOrder, error) {
	var order model.DealerOrder
	if err := r.db.Preload("Dealer").Preload("ApprovedBy").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindAll() ([]model.DealerOrder, error) {
	var orders []model.DealerOrder
	err := r.db.Preload("Dealer").Preload("ApprovedBy").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByDealerID(dealerID string) ([]model.DealerOrder, error) {
	var orders []model.DealerOrder
	err := r.db.Where("dealer_id = ?", dealerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindSettledByDealerID returns the dealer's orders that made it past
// approval (approved, dispatched or delivered), newest first.
func (r *orderRepo) FindSettledByDealerID(dealerID string) ([]model.DealerOrder, error) {
	var orders []model.DealerOrder
	err := r.db.Where("dealer_id = ? AND status IN ?", dealerID,
		[]model.OrderStatus{model.OrderApproved, model.OrderDispatched, model.OrderDelivered}).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByDealerRef(dealerRef uuid.UUID, limit int) ([]model.DealerOrder, error) {
	var orders []model.DealerOrder
	err := r.db.Where("dealer_ref = ?", dealerRef).
		Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Save(order *model.DealerOrder) error {
	return r.db.Save(order).Error
}

// Approve runs the pending check, the stock deduction and the status flip in
// one transaction. Both the order row and the matching SKU row are locked, so
// a second concurrent approval of the same order observes the committed
// status and fails, and overlapping approvals of the same SKU serialize on
// the stock row. On any failure the order stays pending and stock is
// untouched.
func (r *orderRepo) Approve(orderID uuid.UUID, approverID string) (*model.DealerOrder, error) {
	var order model.DealerOrder

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrOrderNotFound
			}
			return err
		}

		if order.Status != model.OrderPending {
			return model.ErrOrderNotPending
		}

		if _, err := deductRiceLocked(tx, order.RiceType, order.Brand, order.BagSize, order.QuantityBags); err != nil {
			return err
		}

		now := time.Now()
		order.Status = model.OrderApproved
		order.ApprovedByID = &approverID
		order.ApprovedAt = &now
		order.UpdatedBy = approverID
		return tx.Save(&order).Error
	})

	if err != nil {
		return nil, err
	}
	return &order, nil
}
