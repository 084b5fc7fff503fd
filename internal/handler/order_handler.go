package handler

import (
	"go-ricemill/internal/model"
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service service.OrderService
	log     *zap.Logger
}

func NewOrderHandler(s service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{service: s, log: log}
}

// PlaceOrder is called by an authenticated dealer session; the dealer id
// comes from the JWT, never from the body.
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	dealerID := getDealerID(c)
	if dealerID == "" {
		return c.Status(403).JSON(fiber.Map{"error": "Only dealer accounts can place orders"})
	}

	var req service.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.PlaceOrder(&req, dealerID, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order placed", "data": order})
}

func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	dealerID := getDealerID(c)
	if dealerID == "" {
		return c.Status(403).JSON(fiber.Map{"error": "Only dealer accounts can view their orders"})
	}

	orders, err := h.service.GetDealerOrders(dealerID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetMyAnalytics(c *fiber.Ctx) error {
	dealerID := getDealerID(c)
	if dealerID == "" {
		return c.Status(403).JSON(fiber.Map{"error": "Only dealer accounts can view their analytics"})
	}

	analytics, err := h.service.GetDealerAnalytics(dealerID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(analytics)
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(orders)
}

// ApproveOrder atomically approves a pending order and deducts the stock it
// reserves. Double approvals and oversells come back as 409s.
func (h *OrderHandler) ApproveOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.ApproveOrder(id, getUserID(c), getUserName(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Order approved", "data": order})
}

// SetStatusRequest carries the non-approval transitions (reject, dispatch,
// deliver).
type SetStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) SetOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.SetOrderStatus(id, model.OrderStatus(req.Status), getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Order status updated", "data": order})
}
