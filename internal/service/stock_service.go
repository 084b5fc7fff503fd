package service

import (
	"encoding/json"
	"fmt"
	"time"

	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/internal/ws"
	"go-ricemill/pkg/validator"

	"github.com/google/uuid"
)

type StockService interface {
	CreateRice(req *CreateRiceRequest, userID string) (*model.Rice, error)
	UpdateRice(id uuid.UUID, req *UpdateRiceRequest, userID string) (*model.Rice, error)
	GetAllRice() ([]model.Rice, error)
	ReserveAndDeduct(riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error)
	GetStockSummary() (*StockSummary, error)
}

type CreateRiceRequest struct {
	RiceName       string  `json:"rice_name" validate:"required"`
	RiceType       string  `json:"rice_type" validate:"required,oneof=Basmati 'Sona Masoori' Jasmine 'Brown Rice' Parboiled Other"`
	Quantity       float64 `json:"quantity" validate:"gte=0"`
	Bags5Kg        int     `json:"bags_5kg" validate:"gte=0"`
	Bags10Kg       int     `json:"bags_10kg" validate:"gte=0"`
	Bags25Kg       int     `json:"bags_25kg" validate:"gte=0"`
	Bags75Kg       int     `json:"bags_75kg" validate:"gte=0"`
	GodownID       string  `json:"godown_id" validate:"required,uuid4"`
	ProductionDate string  `json:"production_date"`
	Status         string  `json:"status" validate:"omitempty,oneof=in_production ready sold"`
}

type UpdateRiceRequest struct {
	Quantity *float64          `json:"quantity" validate:"omitempty,gte=0"`
	Bags5Kg  *int              `json:"bags_5kg" validate:"omitempty,gte=0"`
	Bags10Kg *int              `json:"bags_10kg" validate:"omitempty,gte=0"`
	Bags25Kg *int              `json:"bags_25kg" validate:"omitempty,gte=0"`
	Bags75Kg *int              `json:"bags_75kg" validate:"omitempty,gte=0"`
	Status   *model.RiceStatus `json:"status" validate:"omitempty,oneof=in_production ready sold"`
}

// StockSummary is the admin rollup of rice stock.
type StockSummary struct {
	ByType    []repository.RiceTypeSummary `json:"by_type"`
	BagsStock repository.BagTotals         `json:"bags_stock"`
}

type stockService struct {
	riceRepo   repository.RiceRepository
	godownRepo repository.GodownRepository
	wsHub      *ws.Hub
}

func NewStockService(riceRepo repository.RiceRepository, godownRepo repository.GodownRepository, hub *ws.Hub) StockService {
	return &stockService{
		riceRepo:   riceRepo,
		godownRepo: godownRepo,
		wsHub:      hub,
	}
}

func (s *stockService) CreateRice(req *CreateRiceRequest, userID string) (*model.Rice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	godownID, err := uuid.Parse(req.GodownID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid godown id", ErrValidation)
	}
	if _, err := s.godownRepo.FindByID(godownID); err != nil {
		return nil, err
	}

	productionDate := time.Now()
	if req.ProductionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ProductionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid production date, use YYYY-MM-DD", ErrValidation)
		}
		productionDate = parsed
	}

	status := model.RiceReady
	if req.Status != "" {
		status = model.RiceStatus(req.Status)
	}

	rice := &model.Rice{
		RiceName:       req.RiceName,
		RiceType:       req.RiceType,
		Quantity:       req.Quantity,
		Bags5Kg:        req.Bags5Kg,
		Bags10Kg:       req.Bags10Kg,
		Bags25Kg:       req.Bags25Kg,
		Bags75Kg:       req.Bags75Kg,
		GodownID:       godownID,
		ProductionDate: productionDate,
		Status:         status,
	}
	rice.CreatedBy = userID
	rice.UpdatedBy = userID

	if err := s.riceRepo.Create(rice); err != nil {
		return nil, err
	}
	return rice, nil
}

func (s *stockService) UpdateRice(id uuid.UUID, req *UpdateRiceRequest, userID string) (*model.Rice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	rice, err := s.riceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		rice.Quantity = *req.Quantity
	}
	if req.Bags5Kg != nil {
		rice.Bags5Kg = *req.Bags5Kg
	}
	if req.Bags10Kg != nil {
		rice.Bags10Kg = *req.Bags10Kg
	}
	if req.Bags25Kg != nil {
		rice.Bags25Kg = *req.Bags25Kg
	}
	if req.Bags75Kg != nil {
		rice.Bags75Kg = *req.Bags75Kg
	}
	if req.Status != nil {
		rice.Status = *req.Status
	}
	rice.UpdatedBy = userID

	if err := s.riceRepo.Update(rice); err != nil {
		return nil, err
	}
	return rice, nil
}

func (s *stockService) GetAllRice() ([]model.Rice, error) {
	return s.riceRepo.FindAll()
}

// ReserveAndDeduct is the ledger's stand-alone deduction path, broadcasting
// the resulting stock level to connected clients.
func (s *stockService) ReserveAndDeduct(riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error) {
	if quantityBags < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if _, ok := size.WeightKg(); !ok {
		return nil, model.ErrInvalidBagSize
	}

	rice, err := s.riceRepo.ReserveAndDeduct(riceType, brand, size, quantityBags)
	if err != nil {
		return nil, err
	}

	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "stock_deducted",
			"rice": map[string]interface{}{
				"id":        rice.ID,
				"rice_type": rice.RiceType,
				"rice_name": rice.RiceName,
				"quantity":  rice.Quantity,
				"bags":      rice.TotalBags(),
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return rice, nil
}

func (s *stockService) GetStockSummary() (*StockSummary, error) {
	byType, totals, err := s.riceRepo.StockSummary()
	if err != nil {
		return nil, err
	}
	return &StockSummary{ByType: byType, BagsStock: totals}, nil
}
