package handler

import (
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PaddyHandler struct {
	service service.IntakeService
	log     *zap.Logger
}

func NewPaddyHandler(s service.IntakeService, log *zap.Logger) *PaddyHandler {
	return &PaddyHandler{service: s, log: log}
}

func (h *PaddyHandler) RecordIntake(c *fiber.Ctx) error {
	var req service.RecordIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	paddy, err := h.service.RecordIntake(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Paddy intake recorded", "data": paddy})
}

func (h *PaddyHandler) GetIntakes(c *fiber.Ctx) error {
	paddies, err := h.service.GetAllIntakes()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(paddies)
}

func (h *PaddyHandler) GetStockSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetPaddyStockSummary()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}
