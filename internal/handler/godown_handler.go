package handler

import (
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GodownHandler struct {
	service service.GodownService
	log     *zap.Logger
}

func NewGodownHandler(s service.GodownService, log *zap.Logger) *GodownHandler {
	return &GodownHandler{service: s, log: log}
}

func (h *GodownHandler) CreateGodown(c *fiber.Ctx) error {
	var req service.CreateGodownRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	godown, err := h.service.CreateGodown(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Godown created", "data": godown})
}

func (h *GodownHandler) UpdateGodown(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid godown ID"})
	}

	var req service.UpdateGodownRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	godown, err := h.service.UpdateGodown(id, &req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Godown updated", "data": godown})
}

func (h *GodownHandler) GetGodowns(c *fiber.Ctx) error {
	godowns, err := h.service.GetAllGodowns()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(godowns)
}

func (h *GodownHandler) GetGodownDetails(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid godown ID"})
	}

	details, err := h.service.GetGodownDetails(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(details)
}
