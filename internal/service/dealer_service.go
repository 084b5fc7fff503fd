package service

import (
	"fmt"

	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/pkg/validator"

	"github.com/google/uuid"
)

type DealerService interface {
	CreateDealer(req *CreateDealerRequest, userID string) (*model.Dealer, error)
	UpdateDealer(id uuid.UUID, req *UpdateDealerRequest, userID string) (*model.Dealer, error)
	DisableDealer(id uuid.UUID, userID string) (*model.Dealer, error)
	GetAllDealers() ([]model.Dealer, error)
	GetDealerOverview(id uuid.UUID) (*DealerOverview, error)
}

type CreateDealerRequest struct {
	DealerName    string `json:"dealer_name" validate:"required"`
	BusinessName  string `json:"business_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	Location      string `json:"location" validate:"required"`
	GstNumber     string `json:"gst_number"`
}

type UpdateDealerRequest struct {
	DealerName    *string             `json:"dealer_name"`
	BusinessName  *string             `json:"business_name"`
	ContactNumber *string             `json:"contact_number"`
	Location      *string             `json:"location"`
	GstNumber     *string             `json:"gst_number"`
	Status        *model.DealerStatus `json:"status"`
}

// DealerOverview is the admin's selection view: the dealer plus recent
// purchase history.
type DealerOverview struct {
	Dealer   *model.Dealer       `json:"dealer"`
	Orders   []model.DealerOrder `json:"orders"`
	Invoices []model.Invoice     `json:"invoices"`
}

type dealerService struct {
	dealerRepo  repository.DealerRepository
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
	counterRepo repository.CounterRepository
}

func NewDealerService(dealerRepo repository.DealerRepository, orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository, counterRepo repository.CounterRepository) DealerService {
	return &dealerService{
		dealerRepo:  dealerRepo,
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		counterRepo: counterRepo,
	}
}

func (s *dealerService) CreateDealer(req *CreateDealerRequest, userID string) (*model.Dealer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	seq, err := s.counterRepo.Next(model.CounterDealer)
	if err != nil {
		return nil, err
	}

	dealer := &model.Dealer{
		DealerID:      fmt.Sprintf("DLR%04d", seq),
		DealerName:    req.DealerName,
		BusinessName:  req.BusinessName,
		ContactNumber: req.ContactNumber,
		Location:      req.Location,
		GstNumber:     req.GstNumber,
		Status:        model.DealerActive,
	}
	dealer.CreatedBy = userID
	dealer.UpdatedBy = userID

	if err := s.dealerRepo.Create(dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

func (s *dealerService) UpdateDealer(id uuid.UUID, req *UpdateDealerRequest, userID string) (*model.Dealer, error) {
	dealer, err := s.dealerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.DealerName != nil {
		dealer.DealerName = *req.DealerName
	}
	if req.BusinessName != nil {
		dealer.BusinessName = *req.BusinessName
	}
	if req.ContactNumber != nil {
		dealer.ContactNumber = *req.ContactNumber
	}
	if req.Location != nil {
		dealer.Location = *req.Location
	}
	if req.GstNumber != nil {
		dealer.GstNumber = *req.GstNumber
	}
	if req.Status != nil {
		dealer.Status = *req.Status
	}
	dealer.UpdatedBy = userID

	if err := s.dealerRepo.Update(dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

// DisableDealer is the soft delete: the dealer row stays so historical orders
// and invoices keep resolving, it just can no longer transact.
func (s *dealerService) DisableDealer(id uuid.UUID, userID string) (*model.Dealer, error) {
	dealer, err := s.dealerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	dealer.Status = model.DealerInactive
	dealer.UpdatedBy = userID
	if err := s.dealerRepo.Update(dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

func (s *dealerService) GetAllDealers() ([]model.Dealer, error) {
	return s.dealerRepo.FindAll()
}

func (s *dealerService) GetDealerOverview(id uuid.UUID) (*DealerOverview, error) {
	dealer, err := s.dealerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByDealerRef(dealer.ID, 50)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindByDealerRef(dealer.ID, 50)
	if err != nil {
		return nil, err
	}

	return &DealerOverview{Dealer: dealer, Orders: orders, Invoices: invoices}, nil
}
