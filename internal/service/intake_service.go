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

type IntakeService interface {
	RecordIntake(req *RecordIntakeRequest, userID string) (*model.Paddy, error)
	GetAllIntakes() ([]model.Paddy, error)
	GetPaddyStockSummary() (*PaddyStockSummary, error)
}

type RecordIntakeRequest struct {
	PaddyType       string  `json:"paddy_type" validate:"required,oneof=Basmati 'Sona Masoori' Jasmine 'Brown Rice' Parboiled Other"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	Weight          float64 `json:"weight" validate:"required,gt=0"`
	QualityGrade    string  `json:"quality_grade" validate:"required,oneof=A+ A B C"`
	MoisturePercent float64 `json:"moisture_percent" validate:"gte=0,lte=100"`
	SellerName      string  `json:"seller_name" validate:"required"`
	SellerContact   string  `json:"seller_contact" validate:"required"`
	VehicleNumber   string  `json:"vehicle_number" validate:"required"`
	Location        string  `json:"location" validate:"required"`
	GodownID        string  `json:"godown_id" validate:"required,uuid4"`
}

// PaddyStockSummary is the intake rollup per paddy type.
type PaddyStockSummary struct {
	ByType []repository.PaddyTypeSummary `json:"by_type"`
	Total  float64                       `json:"total"`
}

type intakeService struct {
	paddyRepo repository.PaddyRepository
	wsHub     *ws.Hub
}

func NewIntakeService(paddyRepo repository.PaddyRepository, hub *ws.Hub) IntakeService {
	return &intakeService{
		paddyRepo: paddyRepo,
		wsHub:     hub,
	}
}

// RecordIntake registers an inbound paddy delivery. The capacity check and
// the intake row commit together: a delivery that would overflow the godown
// fails with CapacityExceeded and leaves the fill level untouched.
func (s *intakeService) RecordIntake(req *RecordIntakeRequest, userID string) (*model.Paddy, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	godownID, err := uuid.Parse(req.GodownID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid godown id", ErrValidation)
	}

	paddy := &model.Paddy{
		PaddyType:       req.PaddyType,
		Quantity:        req.Quantity,
		Weight:          req.Weight,
		QualityGrade:    req.QualityGrade,
		MoisturePercent: req.MoisturePercent,
		SellerName:      req.SellerName,
		SellerContact:   req.SellerContact,
		VehicleNumber:   req.VehicleNumber,
		Location:        req.Location,
		GodownID:        godownID,
		Date:            time.Now(),
		AddedByUserID:   &userID,
	}
	paddy.CreatedBy = userID
	paddy.UpdatedBy = userID

	if err := s.paddyRepo.Record(paddy); err != nil {
		return nil, err
	}

	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "paddy_received",
			"intake": map[string]interface{}{
				"id":         paddy.ID,
				"paddy_type": paddy.PaddyType,
				"weight":     paddy.Weight,
				"godown_id":  paddy.GodownID,
			},
			"message": fmt.Sprintf("Received %.0f kg of %s paddy", paddy.Weight, paddy.PaddyType),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return paddy, nil
}

func (s *intakeService) GetAllIntakes() ([]model.Paddy, error) {
	return s.paddyRepo.FindAll()
}

func (s *intakeService) GetPaddyStockSummary() (*PaddyStockSummary, error) {
	byType, total, err := s.paddyRepo.SummaryByType()
	if err != nil {
		return nil, err
	}
	return &PaddyStockSummary{ByType: byType, Total: total}, nil
}
