package service_test

import (
	"errors"
	"testing"

	"go-ricemill/internal/model"
	"go-ricemill/internal/service"
)

var errNotFound = errors.New("record not found")

func TestGodownService_CreateGodown(t *testing.T) {
	var created *model.Godown
	godowns := &fakeGodownRepo{
		FindByNameFn: func(string) (*model.Godown, error) { return nil, errNotFound },
		CreateFn: func(g *model.Godown) error {
			created = g
			return nil
		},
	}

	svc := service.NewGodownService(godowns, &fakeRiceRepo{}, &fakePaddyRepo{})

	godown, err := svc.CreateGodown(&service.CreateGodownRequest{
		Name:     "Main Godown",
		Location: "Guntur",
		Capacity: 100000,
	}, "admin-1")
	if err != nil {
		t.Fatalf("CreateGodown() unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("godown was not persisted")
	}
	if godown.StockType != model.StockMixed {
		t.Errorf("StockType = %s, want mixed default", godown.StockType)
	}
	if !godown.IsActive {
		t.Error("new godown must start active")
	}
	if godown.CurrentStock != 0 {
		t.Errorf("CurrentStock = %v, want 0", godown.CurrentStock)
	}
}

func TestGodownService_CreateGodown_DuplicateName(t *testing.T) {
	godowns := &fakeGodownRepo{
		FindByNameFn: func(name string) (*model.Godown, error) {
			return &model.Godown{Name: name}, nil
		},
	}
	svc := service.NewGodownService(godowns, &fakeRiceRepo{}, &fakePaddyRepo{})

	_, err := svc.CreateGodown(&service.CreateGodownRequest{
		Name:     "Main Godown",
		Location: "Guntur",
		Capacity: 100000,
	}, "admin-1")
	if !errors.Is(err, model.ErrGodownNameTaken) {
		t.Fatalf("error = %v, want ErrGodownNameTaken", err)
	}
}

func TestGodownService_CreateGodown_Validation(t *testing.T) {
	svc := service.NewGodownService(&fakeGodownRepo{}, &fakeRiceRepo{}, &fakePaddyRepo{})

	_, err := svc.CreateGodown(&service.CreateGodownRequest{Name: "G", Location: "X"}, "admin-1")
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
