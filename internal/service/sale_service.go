package service

import (
	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleService interface {
	CreateSale(req *CreateSaleRequest, userID string) (*model.Sale, error)
	UpdateSale(id uuid.UUID, req *UpdateSaleRequest, userID string) (*model.Sale, error)
	GetAllSales() ([]model.Sale, error)
	GetRecentSales(limit int) ([]model.Sale, error)
}

type CreateSaleRequest struct {
	CustomerName    string          `json:"customer_name" validate:"required"`
	CustomerContact string          `json:"customer_contact" validate:"required"`
	CustomerAddress string          `json:"customer_address"`
	RiceType        string          `json:"rice_type" validate:"required"`
	Quantity        float64         `json:"quantity" validate:"required,gt=0"`
	Rate            decimal.Decimal `json:"rate"`
	VehicleNumber   string          `json:"vehicle_number"`
	DriverName      string          `json:"driver_name"`
	Destination     string          `json:"destination"`
}

type UpdateSaleRequest struct {
	Status        *model.SaleStatus `json:"status" validate:"omitempty,oneof=pending dispatched delivered"`
	VehicleNumber *string           `json:"vehicle_number"`
	DriverName    *string           `json:"driver_name"`
	Destination   *string           `json:"destination"`
}

type saleService struct {
	saleRepo repository.SaleRepository
}

func NewSaleService(saleRepo repository.SaleRepository) SaleService {
	return &saleService{saleRepo: saleRepo}
}

// CreateSale records a cash-counter sale. TotalAmount is quantity * rate;
// balance and payment status are derived by the model on save.
func (s *saleService) CreateSale(req *CreateSaleRequest, userID string) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	totalAmount := req.Rate.Mul(decimal.NewFromFloat(req.Quantity))

	sale := &model.Sale{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		CustomerAddress: req.CustomerAddress,
		RiceType:        req.RiceType,
		Quantity:        req.Quantity,
		Rate:            req.Rate,
		TotalAmount:     totalAmount,
		PaidAmount:      decimal.Zero,
		Status:          model.SalePending,
		VehicleNumber:   req.VehicleNumber,
		DriverName:      req.DriverName,
		Destination:     req.Destination,
		SoldByUserID:    &userID,
	}
	sale.CreatedBy = userID
	sale.UpdatedBy = userID

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) UpdateSale(id uuid.UUID, req *UpdateSaleRequest, userID string) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		sale.Status = *req.Status
	}
	if req.VehicleNumber != nil {
		sale.VehicleNumber = *req.VehicleNumber
	}
	if req.DriverName != nil {
		sale.DriverName = *req.DriverName
	}
	if req.Destination != nil {
		sale.Destination = *req.Destination
	}
	sale.UpdatedBy = userID

	if err := s.saleRepo.Save(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetRecentSales(limit int) ([]model.Sale, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.saleRepo.FindRecent(limit)
}
