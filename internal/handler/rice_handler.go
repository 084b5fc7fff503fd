package handler

import (
	"go-ricemill/internal/model"
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RiceHandler struct {
	service service.StockService
	log     *zap.Logger
}

func NewRiceHandler(s service.StockService, log *zap.Logger) *RiceHandler {
	return &RiceHandler{service: s, log: log}
}

func (h *RiceHandler) CreateRice(c *fiber.Ctx) error {
	var req service.CreateRiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rice, err := h.service.CreateRice(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Rice batch created", "data": rice})
}

func (h *RiceHandler) UpdateRice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid rice ID"})
	}

	var req service.UpdateRiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rice, err := h.service.UpdateRice(id, &req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Rice batch updated", "data": rice})
}

func (h *RiceHandler) GetRice(c *fiber.Ctx) error {
	rice, err := h.service.GetAllRice()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(rice)
}

// DeductRequest is a manual stock deduction (offline/counter sale).
type DeductRequest struct {
	RiceType     string `json:"rice_type"`
	Brand        string `json:"brand"`
	BagSize      string `json:"bag_size"`
	QuantityBags int    `json:"quantity_bags"`
}

func (h *RiceHandler) DeductStock(c *fiber.Ctx) error {
	var req DeductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rice, err := h.service.ReserveAndDeduct(req.RiceType, req.Brand, model.BagSize(req.BagSize), req.QuantityBags)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Stock deducted", "data": rice})
}

func (h *RiceHandler) GetStockSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetStockSummary()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}
