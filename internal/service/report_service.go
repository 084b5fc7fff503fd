package service

import (
	"fmt"
	"time"

	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportService interface {
	GetDashboard() (*Dashboard, error)
	GetAlerts() ([]Alert, error)
}

// Dashboard is the admin overview: stock KPIs plus the receivables position.
type Dashboard struct {
	KPIs     DashboardKPIs     `json:"kpis"`
	Payments DashboardPayments `json:"payments"`
}

type DashboardKPIs struct {
	PaddyStock       float64              `json:"paddy_stock"`
	RiceInProduction float64              `json:"rice_in_production"`
	RiceStock        float64              `json:"rice_stock"`
	BagsStock        repository.BagTotals `json:"bags_stock"`
}

type DashboardPayments struct {
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalReceived   decimal.Decimal `json:"total_received"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	PaidPercent     float64         `json:"paid_percent"`
}

// Alert is one operational warning surfaced on the admin dashboard and over
// the websocket feed.
type Alert struct {
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Thresholds for the alert scan.
const (
	lowRiceStockKg        = 100.0
	godownCapacityWarning = 90.0
)

type reportService struct {
	riceRepo   repository.RiceRepository
	paddyRepo  repository.PaddyRepository
	godownRepo repository.GodownRepository
	saleRepo   repository.SaleRepository
}

func NewReportService(riceRepo repository.RiceRepository, paddyRepo repository.PaddyRepository,
	godownRepo repository.GodownRepository, saleRepo repository.SaleRepository) ReportService {
	return &reportService{
		riceRepo:   riceRepo,
		paddyRepo:  paddyRepo,
		godownRepo: godownRepo,
		saleRepo:   saleRepo,
	}
}

func (s *reportService) GetDashboard() (*Dashboard, error) {
	paddyStock, err := s.paddyRepo.TotalWeight()
	if err != nil {
		return nil, err
	}

	inProduction, err := s.riceRepo.TotalQuantityByStatus(model.RiceInProduction)
	if err != nil {
		return nil, err
	}
	ready, err := s.riceRepo.TotalQuantityByStatus(model.RiceReady)
	if err != nil {
		return nil, err
	}

	_, bagTotals, err := s.riceRepo.StockSummary()
	if err != nil {
		return nil, err
	}

	summary, err := s.saleRepo.PaymentSummary()
	if err != nil {
		return nil, err
	}

	paidPercent := 0.0
	if summary.TotalReceivable.GreaterThan(decimal.Zero) {
		ratio, _ := summary.TotalReceived.Div(summary.TotalReceivable).Float64()
		paidPercent = ratio * 100
	}

	return &Dashboard{
		KPIs: DashboardKPIs{
			PaddyStock:       paddyStock,
			RiceInProduction: inProduction,
			RiceStock:        ready,
			BagsStock:        bagTotals,
		},
		Payments: DashboardPayments{
			TotalReceivable: summary.TotalReceivable,
			TotalReceived:   summary.TotalReceived,
			TotalPending:    summary.TotalPending,
			PaidPercent:     paidPercent,
		},
	}, nil
}

// GetAlerts scans for operational problems: rice types running low, godowns
// close to capacity and sales with money outstanding.
func (s *reportService) GetAlerts() ([]Alert, error) {
	now := time.Now()
	alerts := []Alert{}

	byType, err := s.riceRepo.TotalQuantityByType()
	if err != nil {
		return nil, err
	}
	for riceType, total := range byType {
		if total < lowRiceStockKg {
			alerts = append(alerts, Alert{
				Type:      "low_stock",
				Severity:  "warning",
				Message:   fmt.Sprintf("Low stock alert: %s rice is below %.0f kg", riceType, lowRiceStockKg),
				Timestamp: now,
			})
		}
	}

	godowns, err := s.godownRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, godown := range godowns {
		if pct := godown.CapacityPercent(); pct > godownCapacityWarning {
			alerts = append(alerts, Alert{
				Type:      "storage_capacity",
				Severity:  "warning",
				Message:   fmt.Sprintf("%s is %.1f%% full", godown.Name, pct),
				Timestamp: now,
			})
		}
	}

	outstanding, err := s.saleRepo.CountOutstanding()
	if err != nil {
		return nil, err
	}
	if outstanding > 0 {
		alerts = append(alerts, Alert{
			Type:      "pending_payment",
			Severity:  "info",
			Message:   fmt.Sprintf("%d sales have pending payments", outstanding),
			Timestamp: now,
		})
	}

	return alerts, nil
}
