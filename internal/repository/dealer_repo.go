package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DealerRepository interface {
	Create(dealer *model.Dealer) error
	FindAll() ([]model.Dealer, error)
	FindByID(id uuid.UUID) (*model.Dealer, error)
	FindByDealerID(dealerID string) (*model.Dealer, error)
	FindActiveByDealerID(dealerID string) (*model.Dealer, error)
	Update(dealer *model.Dealer) error
}

type dealerRepo struct {
	db *gorm.DB
}

func NewDealerRepo(db *gorm.DB) DealerRepository {
	return &dealerRepo{db}
}

func (r *dealerRepo) Create(dealer *model.Dealer) error {
	return r.db.Create(dealer).Error
}

func (r *dealerRepo) FindAll() ([]model.Dealer, error) {
	var dealers []model.Dealer
	err := r.db.Order("created_at DESC").Find(&dealers).Error
	return dealers, err
}

func (r *dealerRepo) FindByID(id uuid.UUID) (*model.Dealer, error) {
	var dealer model.Dealer
	if err := r.db.First(&dealer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDealerNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepo) FindByDealerID(dealerID string) (*model.Dealer, error) {
	var dealer model.Dealer
	if err := r.db.First(&dealer, "dealer_id = ?", dealerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDealerNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepo) FindActiveByDealerID(dealerID string) (*model.Dealer, error) {
	var dealer model.Dealer
	err := r.db.Where("dealer_id = ? AND status = ?", dealerID, model.DealerActive).
		First(&dealer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDealerInactive
		}
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepo) Update(dealer *model.Dealer) error {
	return r.db.Save(dealer).Error
}
