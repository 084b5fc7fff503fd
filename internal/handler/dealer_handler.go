package handler

import (
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DealerHandler struct {
	service service.DealerService
	log     *zap.Logger
}

func NewDealerHandler(s service.DealerService, log *zap.Logger) *DealerHandler {
	return &DealerHandler{service: s, log: log}
}

func (h *DealerHandler) CreateDealer(c *fiber.Ctx) error {
	var req service.CreateDealerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	dealer, err := h.service.CreateDealer(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Dealer created", "data": dealer})
}

func (h *DealerHandler) UpdateDealer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dealer ID"})
	}

	var req service.UpdateDealerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	dealer, err := h.service.UpdateDealer(id, &req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Dealer updated", "data": dealer})
}

func (h *DealerHandler) DisableDealer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dealer ID"})
	}

	dealer, err := h.service.DisableDealer(id, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Dealer disabled", "data": dealer})
}

func (h *DealerHandler) GetDealers(c *fiber.Ctx) error {
	dealers, err := h.service.GetAllDealers()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dealers)
}

func (h *DealerHandler) GetDealerOverview(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dealer ID"})
	}

	overview, err := h.service.GetDealerOverview(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(overview)
}
