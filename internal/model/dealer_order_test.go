package model_test

import (
	"testing"

	"go-ricemill/internal/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{model.OrderPending, model.OrderRejected, true},
		{model.OrderApproved, model.OrderDispatched, true},
		{model.OrderDispatched, model.OrderDelivered, true},

		// approval is only reachable through the approve operation
		{model.OrderPending, model.OrderApproved, false},

		{model.OrderPending, model.OrderDispatched, false},
		{model.OrderPending, model.OrderDelivered, false},
		{model.OrderApproved, model.OrderRejected, false},
		{model.OrderApproved, model.OrderDelivered, false},
		{model.OrderRejected, model.OrderPending, false},
		{model.OrderRejected, model.OrderApproved, false},
		{model.OrderDispatched, model.OrderApproved, false},
		{model.OrderDelivered, model.OrderDispatched, false},
	}

	for _, tt := range tests {
		if got := model.CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []model.OrderStatus{
		model.OrderPending, model.OrderApproved, model.OrderRejected,
		model.OrderDispatched, model.OrderDelivered,
	} {
		if !model.ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%s) = false, want true", s)
		}
	}

	if model.ValidOrderStatus("cancelled") {
		t.Error("ValidOrderStatus(cancelled) = true, want false")
	}
}
