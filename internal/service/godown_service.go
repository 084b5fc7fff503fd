package service

import (
	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/pkg/validator"

	"github.com/google/uuid"
)

type GodownService interface {
	CreateGodown(req *CreateGodownRequest, userID string) (*model.Godown, error)
	UpdateGodown(id uuid.UUID, req *UpdateGodownRequest, userID string) (*model.Godown, error)
	GetAllGodowns() ([]model.Godown, error)
	GetGodownDetails(id uuid.UUID) (*GodownDetails, error)
}

type CreateGodownRequest struct {
	Name      string  `json:"name" validate:"required"`
	Location  string  `json:"location" validate:"required"`
	Capacity  float64 `json:"capacity" validate:"required,gt=0"`
	StockType string  `json:"stock_type" validate:"omitempty,oneof=paddy rice mixed"`
}

type UpdateGodownRequest struct {
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Capacity  *float64 `json:"capacity" validate:"omitempty,gt=0"`
	StockType *string  `json:"stock_type" validate:"omitempty,oneof=paddy rice mixed"`
	IsActive  *bool    `json:"is_active"`
}

// GodownDetails bundles the godown with the stock currently held in it.
type GodownDetails struct {
	Godown     *model.Godown `json:"godown"`
	PaddyStock []model.Paddy `json:"paddy_stock"`
	RiceStock  []model.Rice  `json:"rice_stock"`
}

type godownService struct {
	godownRepo repository.GodownRepository
	riceRepo   repository.RiceRepository
	paddyRepo  repository.PaddyRepository
}

func NewGodownService(godownRepo repository.GodownRepository, riceRepo repository.RiceRepository,
	paddyRepo repository.PaddyRepository) GodownService {
	return &godownService{
		godownRepo: godownRepo,
		riceRepo:   riceRepo,
		paddyRepo:  paddyRepo,
	}
}

func (s *godownService) CreateGodown(req *CreateGodownRequest, userID string) (*model.Godown, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// Godown names are unique
	if existing, err := s.godownRepo.FindByName(req.Name); err == nil && existing != nil {
		return nil, model.ErrGodownNameTaken
	}

	stockType := model.StockMixed
	if req.StockType != "" {
		stockType = model.StockType(req.StockType)
	}

	godown := &model.Godown{
		Name:      req.Name,
		Location:  req.Location,
		Capacity:  req.Capacity,
		StockType: stockType,
		IsActive:  true,
	}
	godown.CreatedBy = userID
	godown.UpdatedBy = userID

	if err := s.godownRepo.Create(godown); err != nil {
		return nil, err
	}
	return godown, nil
}

func (s *godownService) UpdateGodown(id uuid.UUID, req *UpdateGodownRequest, userID string) (*model.Godown, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	godown, err := s.godownRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != godown.Name {
		if existing, err := s.godownRepo.FindByName(*req.Name); err == nil && existing != nil {
			return nil, model.ErrGodownNameTaken
		}
		godown.Name = *req.Name
	}
	if req.Location != nil {
		godown.Location = *req.Location
	}
	if req.Capacity != nil {
		godown.Capacity = *req.Capacity
	}
	if req.StockType != nil {
		godown.StockType = model.StockType(*req.StockType)
	}
	if req.IsActive != nil {
		godown.IsActive = *req.IsActive
	}
	godown.UpdatedBy = userID

	if err := s.godownRepo.Update(godown); err != nil {
		return nil, err
	}
	return godown, nil
}

func (s *godownService) GetAllGodowns() ([]model.Godown, error) {
	return s.godownRepo.FindAll()
}

func (s *godownService) GetGodownDetails(id uuid.UUID) (*GodownDetails, error) {
	godown, err := s.godownRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	riceStock, err := s.riceRepo.FindByGodown(id)
	if err != nil {
		return nil, err
	}

	paddyStock, err := s.paddyRepo.FindByGodown(id)
	if err != nil {
		return nil, err
	}

	return &GodownDetails{Godown: godown, PaddyStock: paddyStock, RiceStock: riceStock}, nil
}
