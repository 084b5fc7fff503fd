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
	"github.com/shopspring/decimal"
)

type OrderService interface {
	PlaceOrder(req *PlaceOrderRequest, dealerID, userID string) (*model.DealerOrder, error)
	GetDealerOrders(dealerID string) ([]model.DealerOrder, error)
	GetAllOrders() ([]model.DealerOrder, error)
	ApproveOrder(orderID uuid.UUID, approverID, approverName string) (*model.DealerOrder, error)
	SetOrderStatus(orderID uuid.UUID, status model.OrderStatus, userID string) (*model.DealerOrder, error)
	GetDealerAnalytics(dealerID string) (*DealerAnalytics, error)
}

type PlaceOrderRequest struct {
	RiceType     string `json:"rice_type" validate:"required"`
	Brand        string `json:"brand" validate:"required"`
	BagSize      string `json:"bag_size" validate:"required,bag_size"`
	QuantityBags int    `json:"quantity_bags" validate:"required,gte=1"`
}

// DealerAnalytics aggregates a dealer's settled orders (approved, dispatched
// or delivered only; pending and rejected orders are not purchases).
type DealerAnalytics struct {
	TotalQuantity         float64         `json:"total_quantity"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	MostPurchasedRiceType string          `json:"most_purchased_rice_type,omitempty"`
	LastOrderDate         *time.Time      `json:"last_order_date,omitempty"`
}

type orderService struct {
	orderRepo  repository.OrderRepository
	dealerRepo repository.DealerRepository
	wsHub      *ws.Hub
}

func NewOrderService(orderRepo repository.OrderRepository, dealerRepo repository.DealerRepository, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		dealerRepo: dealerRepo,
		wsHub:      hub,
	}
}

// PlaceOrder validates the request, requires an active dealer and stores the
// order as pending. TotalQuantityKg is derived here, once; pricing fields
// stay zero until invoicing.
func (s *orderService) PlaceOrder(req *PlaceOrderRequest, dealerID, userID string) (*model.DealerOrder, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	dealer, err := s.dealerRepo.FindActiveByDealerID(dealerID)
	if err != nil {
		return nil, err
	}

	bagSize := model.BagSize(req.BagSize)
	weight, ok := bagSize.WeightKg()
	if !ok {
		return nil, model.ErrInvalidBagSize
	}

	order := &model.DealerOrder{
		DealerRef:       dealer.ID,
		DealerID:        dealer.DealerID,
		RiceType:        req.RiceType,
		Brand:           req.Brand,
		BagSize:         bagSize,
		QuantityBags:    req.QuantityBags,
		TotalQuantityKg: weight * float64(req.QuantityBags),
		Status:          model.OrderPending,
		CreatedByUserID: &userID,
	}
	order.CreatedBy = userID
	order.UpdatedBy = userID

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetDealerOrders(dealerID string) ([]model.DealerOrder, error) {
	return s.orderRepo.FindByDealerID(dealerID)
}

func (s *orderService) GetAllOrders() ([]model.DealerOrder, error) {
	return s.orderRepo.FindAll()
}

// ApproveOrder moves a pending order to approved, coupled to the stock
// deduction: the repository runs the pending check, the ledger deduction and
// the status flip in one transaction. Ledger failures surface unchanged and
// leave the order pending.
func (s *orderService) ApproveOrder(orderID uuid.UUID, approverID, approverName string) (*model.DealerOrder, error) {
	order, err := s.orderRepo.Approve(orderID, approverID)
	if err != nil {
		return nil, err
	}

	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "order_approved",
			"order": map[string]interface{}{
				"id":            order.ID,
				"dealer_id":     order.DealerID,
				"rice_type":     order.RiceType,
				"brand":         order.Brand,
				"bag_size":      order.BagSize,
				"quantity_bags": order.QuantityBags,
			},
			"message": fmt.Sprintf("%s approved order for %d x %s bags of %s (%s)",
				approverName, order.QuantityBags, order.BagSize, order.Brand, order.RiceType),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return order, nil
}

// SetOrderStatus is a plain status write. Only the transitions in the model's
// table are allowed; in particular an order cannot be moved into approved
// here, since that would bypass the stock deduction.
func (s *orderService) SetOrderStatus(orderID uuid.UUID, status model.OrderStatus, userID string) (*model.DealerOrder, error) {
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		return nil, model.ErrInvalidTransition
	}

	order.Status = status
	order.UpdatedBy = userID
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetDealerAnalytics(dealerID string) (*DealerAnalytics, error) {
	orders, err := s.orderRepo.FindSettledByDealerID(dealerID)
	if err != nil {
		return nil, err
	}

	analytics := &DealerAnalytics{TotalRevenue: decimal.Zero}
	typeTotals := make(map[string]float64)
	for _, o := range orders {
		analytics.TotalQuantity += o.TotalQuantityKg
		analytics.TotalRevenue = analytics.TotalRevenue.Add(o.TotalAmount)
		typeTotals[o.RiceType] += o.TotalQuantityKg
	}

	best := 0.0
	for riceType, total := range typeTotals {
		if total > best {
			best = total
			analytics.MostPurchasedRiceType = riceType
		}
	}

	if len(orders) > 0 {
		// FindSettledByDealerID orders newest first
		last := orders[0].CreatedAt
		analytics.LastOrderDate = &last
	}

	return analytics, nil
}
