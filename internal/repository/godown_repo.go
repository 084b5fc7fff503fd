package repository

import (
	"errors"

	"go-ricemill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GodownRepository interface {
	Create(godown *model.Godown) error
	FindAll() ([]model.Godown, error)
	FindByID(id uuid.UUID) (*model.Godown, error)
	FindByName(name string) (*model.Godown, error)
	Update(godown *model.Godown) error
}

type godownRepo struct {
	db *gorm.DB
}

func NewGodownRepo(db *gorm.DB) GodownRepository {
	return &godownRepo{db}
}

func (r *godownRepo) Create(godown *model.Godown) error {
	return r.db.Create(godown).Error
}

func (r *godownRepo) FindAll() ([]model.Godown, error) {
	var godowns []model.Godown
	err := r.db.Order("name ASC").Find(&godowns).Error
	return godowns, err
}

func (r *godownRepo) FindByID(id uuid.UUID) (*model.Godown, error) {
	var godown model.Godown
	if err := r.db.First(&godown, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGodownNotFound
		}
		return nil, err
	}
	return &godown, nil
}

func (r *godownRepo) FindByName(name string) (*model.Godown, error) {
	var godown model.Godown
	if err := r.db.First(&godown, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGodownNotFound
		}
		return nil, err
	}
	return &godown, nil
}

func (r *godownRepo) Update(godown *model.Godown) error {
	return r.db.Save(godown).Error
}
