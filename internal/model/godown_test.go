package model_test

import (
	"errors"
	"testing"

	"go-ricemill/internal/model"
)

func TestGodown_Receive(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		weight    float64
		wantErr   error
		wantStock float64
	}{
		{name: "fits", current: 40, weight: 50, wantStock: 90},
		{name: "fills exactly to capacity", current: 40, weight: 60, wantStock: 100},
		{name: "overflow rejected, stock unchanged", current: 95, weight: 10, wantErr: model.ErrCapacityExceeded, wantStock: 95},
		{name: "overflow from empty", current: 0, weight: 101, wantErr: model.ErrCapacityExceeded, wantStock: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &model.Godown{Name: "Main Godown", Capacity: 100, CurrentStock: tt.current}

			err := g.Receive(tt.weight)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Receive() error = %v, want %v", err, tt.wantErr)
			}
			if g.CurrentStock != tt.wantStock {
				t.Errorf("CurrentStock = %v, want %v", g.CurrentStock, tt.wantStock)
			}
		})
	}
}

func TestGodown_CapacityPercent(t *testing.T) {
	g := &model.Godown{Capacity: 200, CurrentStock: 50}
	if got := g.CapacityPercent(); got != 25 {
		t.Errorf("CapacityPercent() = %v, want 25", got)
	}

	empty := &model.Godown{}
	if got := empty.CapacityPercent(); got != 0 {
		t.Errorf("CapacityPercent() with zero capacity = %v, want 0", got)
	}
}
