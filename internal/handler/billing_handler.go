package handler

import (
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BillingHandler struct {
	billing service.BillingService
	sales   service.SaleService
	log     *zap.Logger
}

func NewBillingHandler(billing service.BillingService, sales service.SaleService, log *zap.Logger) *BillingHandler {
	return &BillingHandler{billing: billing, sales: sales, log: log}
}

func (h *BillingHandler) CreateInvoice(c *fiber.Ctx) error {
	var req service.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.billing.CreateInvoice(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": invoice})
}

func (h *BillingHandler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.billing.GetAllInvoices()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(invoices)
}

// GetMyInvoices serves the dealer's own invoices, scoped by the JWT.
func (h *BillingHandler) GetMyInvoices(c *fiber.Ctx) error {
	dealerID := getDealerID(c)
	if dealerID == "" {
		return c.Status(403).JSON(fiber.Map{"error": "Only dealer accounts can view their invoices"})
	}

	invoices, err := h.billing.GetDealerInvoices(dealerID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(invoices)
}

func (h *BillingHandler) RecordPayment(c *fiber.Ctx) error {
	var req service.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	payment, err := h.billing.RecordPayment(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment recorded", "data": payment})
}

func (h *BillingHandler) GetPayments(c *fiber.Ctx) error {
	payments, err := h.billing.GetAllPayments()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(payments)
}

func (h *BillingHandler) GetPaymentSummary(c *fiber.Ctx) error {
	summary, err := h.billing.GetPaymentSummary()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

func (h *BillingHandler) GetCustomerLedger(c *fiber.Ctx) error {
	ledger, err := h.billing.GetCustomerLedger()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ledger)
}

func (h *BillingHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.sales.CreateSale(&req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale created", "data": sale})
}

func (h *BillingHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	var req service.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.sales.UpdateSale(id, &req, getUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"message": "Sale updated", "data": sale})
}

func (h *BillingHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.sales.GetAllSales()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(sales)
}

func (h *BillingHandler) GetRecentSales(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	sales, err := h.sales.GetRecentSales(limit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(sales)
}
