package scheduler

import (
	"encoding/json"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-ricemill/internal/service"
	"go-ricemill/internal/ws"
)

// Scheduler runs the periodic alert scan and pushes findings to connected
// dashboard clients over the websocket hub.
type Scheduler struct {
	cron      *cron.Cron
	reportSvc service.ReportService
	hub       *ws.Hub
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(reportSvc service.ReportService, hub *ws.Hub, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		reportSvc: reportSvc,
		hub:       hub,
		logger:    logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	// Scan stock and godown levels every 15 minutes.
	_, err := s.cron.AddFunc("*/15 * * * *", s.broadcastAlerts)
	if err != nil {
		s.logger.Error("failed to schedule alert scan", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) broadcastAlerts() {
	alerts, err := s.reportSvc.GetAlerts()
	if err != nil {
		s.logger.Error("alert scan failed", zap.Error(err))
		return
	}
	if len(alerts) == 0 {
		return
	}

	s.logger.Info("alert scan complete", zap.Int("alerts", len(alerts)))

	payload, err := json.Marshal(map[string]interface{}{
		"type": "alerts",
		"data": alerts,
	})
	if err != nil {
		s.logger.Error("failed to encode alerts", zap.Error(err))
		return
	}
	s.hub.Broadcast <- payload
}
