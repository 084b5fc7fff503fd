package service

import (
	"encoding/json"
	"fmt"

	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
	"go-ricemill/internal/ws"
	"go-ricemill/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingService interface {
	CreateInvoice(req *CreateInvoiceRequest, userID string) (*model.Invoice, error)
	GetAllInvoices() ([]model.Invoice, error)
	GetDealerInvoices(dealerID string) ([]model.Invoice, error)
	RecordPayment(req *RecordPaymentRequest, userID string) (*model.Payment, error)
	GetAllPayments() ([]model.Payment, error)
	GetPaymentSummary() (*repository.PaymentSummary, error)
	GetCustomerLedger() ([]repository.LedgerEntry, error)
}

type CreateInvoiceRequest struct {
	DealerID string          `json:"dealer_id" validate:"required"`
	OrderID  string          `json:"order_id" validate:"required,uuid4"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

type RecordPaymentRequest struct {
	SaleID          string          `json:"sale_id" validate:"omitempty,uuid4"`
	InvoiceID       string          `json:"invoice_id" validate:"omitempty,uuid4"`
	CustomerName    string          `json:"customer_name" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method" validate:"omitempty,oneof=cash cheque bank_transfer upi other"`
	ReferenceNumber string          `json:"reference_number"`
	Notes           string          `json:"notes"`
}

type billingService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	saleRepo    repository.SaleRepository
	dealerRepo  repository.DealerRepository
	orderRepo   repository.OrderRepository
	counterRepo repository.CounterRepository
	wsHub       *ws.Hub
}

func NewBillingService(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository,
	saleRepo repository.SaleRepository, dealerRepo repository.DealerRepository,
	orderRepo repository.OrderRepository, counterRepo repository.CounterRepository, hub *ws.Hub) BillingService {
	return &billingService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		saleRepo:    saleRepo,
		dealerRepo:  dealerRepo,
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
		wsHub:       hub,
	}
}

// CreateInvoice bills a dealer for an order. The order is not required to be
// approved yet: an invoice may be prepared ahead of dispatch.
func (s *billingService) CreateInvoice(req *CreateInvoiceRequest, userID string) (*model.Invoice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	dealer, err := s.dealerRepo.FindByDealerID(req.DealerID)
	if err != nil {
		return nil, err
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order id", ErrValidation)
	}
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	seq, err := s.counterRepo.Next(model.CounterInvoice)
	if err != nil {
		return nil, err
	}

	invoice := &model.Invoice{
		DealerRef:     dealer.ID,
		DealerID:      dealer.DealerID,
		OrderID:       order.ID,
		InvoiceNumber: fmt.Sprintf("INV-%04d", seq),
		Amount:        req.Amount,
		PaidAmount:    decimal.Zero,
		PaymentStatus: model.PaymentPending,
		Notes:         req.Notes,
	}
	invoice.CreatedBy = userID
	invoice.UpdatedBy = userID

	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *billingService) GetAllInvoices() ([]model.Invoice, error) {
	return s.invoiceRepo.FindAll()
}

func (s *billingService) GetDealerInvoices(dealerID string) ([]model.Invoice, error) {
	return s.invoiceRepo.FindByDealerID(dealerID)
}

// RecordPayment settles an amount against exactly one of a sale or a dealer
// invoice. The audit row and the target's paid-amount update commit in one
// transaction; the target's payment status is rederived by its own rule.
func (s *billingService) RecordPayment(req *RecordPaymentRequest, userID string) (*model.Payment, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if (req.SaleID == "") == (req.InvoiceID == "") {
		return nil, model.ErrPaymentTargetRequired
	}

	method := model.MethodCash
	if req.PaymentMethod != "" {
		method = model.PaymentMethod(req.PaymentMethod)
	}

	payment := &model.Payment{
		CustomerName:     req.CustomerName,
		Amount:           req.Amount,
		PaymentMethod:    method,
		ReferenceNumber:  req.ReferenceNumber,
		Notes:            req.Notes,
		ReceivedByUserID: &userID,
	}
	payment.CreatedBy = userID
	payment.UpdatedBy = userID

	if req.SaleID != "" {
		saleID, err := uuid.Parse(req.SaleID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid sale id", ErrValidation)
		}
		payment.SaleID = &saleID
	} else {
		invoiceID, err := uuid.Parse(req.InvoiceID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid invoice id", ErrValidation)
		}
		payment.InvoiceID = &invoiceID
	}

	if err := s.paymentRepo.Record(payment); err != nil {
		return nil, err
	}

	go func() {
		payload := map[string]interface{}{
			"type":     "payment_recorded",
			"customer": payment.CustomerName,
			"amount":   payment.Amount,
			"method":   payment.PaymentMethod,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return payment, nil
}

func (s *billingService) GetAllPayments() ([]model.Payment, error) {
	return s.paymentRepo.FindAll()
}

func (s *billingService) GetPaymentSummary() (*repository.PaymentSummary, error) {
	return s.saleRepo.PaymentSummary()
}

func (s *billingService) GetCustomerLedger() ([]repository.LedgerEntry, error) {
	return s.saleRepo.Ledger()
}
