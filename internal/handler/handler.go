package handler

import (
	"errors"

	"go-ricemill/internal/model"
	"go-ricemill/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Helpers to read user info from JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system" // Fallback (shouldn't happen in protected routes)
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

// getDealerID returns the DLR id for dealer sessions, "" for staff.
func getDealerID(c *fiber.Ctx) string {
	dealerID := c.Locals("dealer_id")
	if dealerID == nil {
		return ""
	}
	return dealerID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError translates business-rule errors into HTTP statuses. Anything
// it does not recognise is a storage failure: logged, and hidden behind a 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, model.ErrInvalidBagSize),
		errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrPaymentTargetRequired):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, model.ErrDealerNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrInvoiceNotFound),
		errors.Is(err, model.ErrSaleNotFound),
		errors.Is(err, model.ErrGodownNotFound),
		errors.Is(err, model.ErrRiceStockNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, model.ErrInsufficientStock),
		errors.Is(err, model.ErrCapacityExceeded),
		errors.Is(err, model.ErrOrderNotPending),
		errors.Is(err, model.ErrDealerInactive),
		errors.Is(err, model.ErrGodownNameTaken):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})

	// Unique-constraint violations that race past the check-then-create
	// guards (godown name, invoice number) are conflicts, not server faults.
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return c.Status(409).JSON(fiber.Map{"error": "Duplicate record"})
	}

	log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
