package service_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"go-ricemill/internal/model"
	"go-ricemill/internal/service"
	"go-ricemill/internal/ws"
)

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func activeDealer() *model.Dealer {
	d := &model.Dealer{
		DealerID:      "DLR0001",
		DealerName:    "Ravi Traders",
		BusinessName:  "Ravi Rice Traders",
		ContactNumber: "9876543210",
		Location:      "Guntur",
		Status:        model.DealerActive,
	}
	d.ID = uuid.New()
	return d
}

func TestOrderService_PlaceOrder(t *testing.T) {
	dealer := activeDealer()

	var created *model.DealerOrder
	orders := &fakeOrderRepo{
		CreateFn: func(o *model.DealerOrder) error {
			created = o
			return nil
		},
	}
	dealers := &fakeDealerRepo{
		FindActiveByDealerIDFn: func(id string) (*model.Dealer, error) {
			if id != dealer.DealerID {
				return nil, model.ErrDealerInactive
			}
			return dealer, nil
		},
	}

	svc := service.NewOrderService(orders, dealers, newTestHub())

	order, err := svc.PlaceOrder(&service.PlaceOrderRequest{
		RiceType:     "Basmati",
		Brand:        "Premium Gold",
		BagSize:      "25kg",
		QuantityBags: 4,
	}, "DLR0001", "user-1")
	if err != nil {
		t.Fatalf("PlaceOrder() unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("order was not persisted")
	}
	if order.Status != model.OrderPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.TotalQuantityKg != 100 {
		t.Errorf("TotalQuantityKg = %v, want 100", order.TotalQuantityKg)
	}
	if order.DealerRef != dealer.ID || order.DealerID != "DLR0001" {
		t.Errorf("dealer linkage wrong: ref=%s id=%s", order.DealerRef, order.DealerID)
	}
	if !order.RatePerKg.IsZero() || !order.TotalAmount.IsZero() {
		t.Error("pricing fields must stay zero until invoicing")
	}
}

func TestOrderService_PlaceOrder_InactiveDealer(t *testing.T) {
	dealers := &fakeDealerRepo{
		FindActiveByDealerIDFn: func(string) (*model.Dealer, error) {
			return nil, model.ErrDealerInactive
		},
	}

	svc := service.NewOrderService(&fakeOrderRepo{}, dealers, newTestHub())

	_, err := svc.PlaceOrder(&service.PlaceOrderRequest{
		RiceType:     "Basmati",
		Brand:        "Premium Gold",
		BagSize:      "25kg",
		QuantityBags: 1,
	}, "DLR0009", "user-1")
	if !errors.Is(err, model.ErrDealerInactive) {
		t.Fatalf("error = %v, want ErrDealerInactive", err)
	}
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	svc := service.NewOrderService(&fakeOrderRepo{}, &fakeDealerRepo{}, newTestHub())

	tests := []struct {
		name string
		req  service.PlaceOrderRequest
	}{
		{name: "missing rice type", req: service.PlaceOrderRequest{Brand: "B", BagSize: "25kg", QuantityBags: 1}},
		{name: "unknown bag size", req: service.PlaceOrderRequest{RiceType: "Basmati", Brand: "B", BagSize: "50kg", QuantityBags: 1}},
		{name: "zero bags", req: service.PlaceOrderRequest{RiceType: "Basmati", Brand: "B", BagSize: "25kg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(&tt.req, "DLR0001", "user-1")
			if !errors.Is(err, service.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestOrderService_SetOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		current model.OrderStatus
		next    model.OrderStatus
		wantErr error
	}{
		{name: "pending to rejected", current: model.OrderPending, next: model.OrderRejected},
		{name: "approved to dispatched", current: model.OrderApproved, next: model.OrderDispatched},
		{name: "dispatched to delivered", current: model.OrderDispatched, next: model.OrderDelivered},
		{name: "approval bypass blocked", current: model.OrderPending, next: model.OrderApproved, wantErr: model.ErrInvalidTransition},
		{name: "rejected is terminal", current: model.OrderRejected, next: model.OrderDispatched, wantErr: model.ErrInvalidTransition},
		{name: "unknown status", current: model.OrderPending, next: model.OrderStatus("cancelled"), wantErr: service.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &model.DealerOrder{Status: tt.current}
			order.ID = uuid.New()

			orders := &fakeOrderRepo{
				FindByIDFn: func(uuid.UUID) (*model.DealerOrder, error) { return order, nil },
				SaveFn:     func(*model.DealerOrder) error { return nil },
			}
			svc := service.NewOrderService(orders, &fakeDealerRepo{}, newTestHub())

			got, err := svc.SetOrderStatus(order.ID, tt.next, "user-1")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Status != tt.next {
				t.Errorf("status = %s, want %s", got.Status, tt.next)
			}
		})
	}
}

func TestOrderService_ApproveOrder_NotPending(t *testing.T) {
	orders := &fakeOrderRepo{
		ApproveFn: func(uuid.UUID, string) (*model.DealerOrder, error) {
			return nil, model.ErrOrderNotPending
		},
	}
	svc := service.NewOrderService(orders, &fakeDealerRepo{}, newTestHub())

	_, err := svc.ApproveOrder(uuid.New(), "admin-1", "Admin")
	if !errors.Is(err, model.ErrOrderNotPending) {
		t.Fatalf("error = %v, want ErrOrderNotPending", err)
	}
}

func TestOrderService_ApproveOrder_LedgerFailureLeavesPending(t *testing.T) {
	order := &model.DealerOrder{Status: model.OrderPending, QuantityBags: 50, BagSize: model.Bag25Kg}
	order.ID = uuid.New()

	orders := &fakeOrderRepo{
		ApproveFn: func(uuid.UUID, string) (*model.DealerOrder, error) {
			// The repository rolls back on a ledger failure.
			return nil, model.ErrInsufficientStock
		},
	}
	svc := service.NewOrderService(orders, &fakeDealerRepo{}, newTestHub())

	_, err := svc.ApproveOrder(order.ID, "admin-1", "Admin")
	if !errors.Is(err, model.ErrInsufficientStock) {
		t.Fatalf("error = %v, want ErrInsufficientStock", err)
	}
	if order.Status != model.OrderPending {
		t.Errorf("status = %s, want pending after failed approval", order.Status)
	}
}

// Concurrent approvals against shared stock must never deduct past zero.
// The fake mirrors the repository contract: check, deduct and flip the
// status as one critical section.
func TestOrderService_ApproveOrder_ConcurrentNoOversell(t *testing.T) {
	rice := &model.Rice{Quantity: 250, Bags25Kg: 10}

	var mu sync.Mutex
	orders := make(map[uuid.UUID]*model.DealerOrder)
	for i := 0; i < 20; i++ {
		o := &model.DealerOrder{
			Status:       model.OrderPending,
			BagSize:      model.Bag25Kg,
			QuantityBags: 2,
		}
		o.ID = uuid.New()
		orders[o.ID] = o
	}

	repo := &fakeOrderRepo{
		ApproveFn: func(orderID uuid.UUID, approverID string) (*model.DealerOrder, error) {
			mu.Lock()
			defer mu.Unlock()

			o := orders[orderID]
			if o.Status != model.OrderPending {
				return nil, model.ErrOrderNotPending
			}
			if err := rice.Deduct(o.BagSize, o.QuantityBags); err != nil {
				return nil, err
			}
			o.Status = model.OrderApproved
			now := time.Now()
			o.ApprovedAt = &now
			return o, nil
		},
	}
	svc := service.NewOrderService(repo, &fakeDealerRepo{}, newTestHub())

	var wg sync.WaitGroup
	results := make(chan error, len(orders))
	for id := range orders {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := svc.ApproveOrder(id, "admin-1", "Admin")
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	approved := 0
	for err := range results {
		if err == nil {
			approved++
		} else if !errors.Is(err, model.ErrInsufficientStock) {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// 10 bags of stock, 2 bags per order: exactly 5 approvals fit.
	if approved != 5 {
		t.Errorf("approved = %d, want 5", approved)
	}
	if rice.Bags25Kg != 0 || rice.Quantity != 0 {
		t.Errorf("stock left: bags=%d kg=%v, want 0/0", rice.Bags25Kg, rice.Quantity)
	}
}

func TestOrderService_GetDealerAnalytics(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-48 * time.Hour)

	settled := []model.DealerOrder{
		{RiceType: "Basmati", TotalQuantityKg: 500},
		{RiceType: "Jasmine", TotalQuantityKg: 200},
		{RiceType: "Basmati", TotalQuantityKg: 300},
	}
	settled[0].CreatedAt = now
	settled[1].CreatedAt = earlier
	settled[2].CreatedAt = earlier

	orders := &fakeOrderRepo{
		FindSettledByDealerIDFn: func(string) ([]model.DealerOrder, error) { return settled, nil },
	}
	svc := service.NewOrderService(orders, &fakeDealerRepo{}, newTestHub())

	analytics, err := svc.GetDealerAnalytics("DLR0001")
	if err != nil {
		t.Fatalf("GetDealerAnalytics() unexpected error: %v", err)
	}

	if analytics.TotalQuantity != 1000 {
		t.Errorf("TotalQuantity = %v, want 1000", analytics.TotalQuantity)
	}
	if analytics.MostPurchasedRiceType != "Basmati" {
		t.Errorf("MostPurchasedRiceType = %q, want Basmati", analytics.MostPurchasedRiceType)
	}
	if analytics.LastOrderDate == nil || !analytics.LastOrderDate.Equal(now) {
		t.Errorf("LastOrderDate = %v, want %v", analytics.LastOrderDate, now)
	}
}
