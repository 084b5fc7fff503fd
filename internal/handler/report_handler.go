package handler

import (
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service service.ReportService
	log     *zap.Logger
}

func NewReportHandler(s service.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{service: s, log: log}
}

func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.GetDashboard()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dashboard)
}

func (h *ReportHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.GetAlerts()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(alerts)
}
