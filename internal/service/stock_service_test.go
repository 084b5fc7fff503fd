package service_test

import (
	"errors"
	"testing"

	"go-ricemill/internal/model"
	"go-ricemill/internal/service"
)

func TestStockService_ReserveAndDeduct(t *testing.T) {
	var gotType, gotBrand string
	var gotSize model.BagSize
	var gotBags int

	rices := &fakeRiceRepo{
		ReserveAndDeductFn: func(riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error) {
			gotType, gotBrand, gotSize, gotBags = riceType, brand, size, quantityBags
			return &model.Rice{RiceType: riceType, RiceName: brand, Quantity: 150, Bags25Kg: 6}, nil
		},
	}
	svc := service.NewStockService(rices, &fakeGodownRepo{}, newTestHub())

	rice, err := svc.ReserveAndDeduct("Basmati", "Premium Gold", model.Bag25Kg, 4)
	if err != nil {
		t.Fatalf("ReserveAndDeduct() unexpected error: %v", err)
	}

	if gotType != "Basmati" || gotBrand != "Premium Gold" || gotSize != model.Bag25Kg || gotBags != 4 {
		t.Errorf("repo called with (%s, %s, %s, %d)", gotType, gotBrand, gotSize, gotBags)
	}
	if rice.Quantity != 150 {
		t.Errorf("Quantity = %v, want 150", rice.Quantity)
	}
}

func TestStockService_ReserveAndDeduct_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		size    model.BagSize
		bags    int
		repoErr error
		wantErr error
	}{
		{name: "zero bags", size: model.Bag25Kg, bags: 0, wantErr: service.ErrValidation},
		{name: "negative bags", size: model.Bag25Kg, bags: -3, wantErr: service.ErrValidation},
		{name: "unknown size", size: model.BagSize("12kg"), bags: 1, wantErr: model.ErrInvalidBagSize},
		{name: "no matching stock", size: model.Bag25Kg, bags: 1, repoErr: model.ErrRiceStockNotFound, wantErr: model.ErrRiceStockNotFound},
		{name: "insufficient stock", size: model.Bag25Kg, bags: 100, repoErr: model.ErrInsufficientStock, wantErr: model.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rices := &fakeRiceRepo{
				ReserveAndDeductFn: func(string, string, model.BagSize, int) (*model.Rice, error) {
					return nil, tt.repoErr
				},
			}
			svc := service.NewStockService(rices, &fakeGodownRepo{}, newTestHub())

			_, err := svc.ReserveAndDeduct("Basmati", "Premium Gold", tt.size, tt.bags)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStockService_CreateRice_Validation(t *testing.T) {
	svc := service.NewStockService(&fakeRiceRepo{}, &fakeGodownRepo{}, newTestHub())

	_, err := svc.CreateRice(&service.CreateRiceRequest{
		RiceName: "Premium Gold",
		RiceType: "Sticky", // not in the enum
		GodownID: "not-a-uuid",
	}, "user-1")
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
