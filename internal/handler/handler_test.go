package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-ricemill/internal/model"
	"go-ricemill/internal/service"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", service.ErrValidation, 400},
		{"invalid transition", model.ErrInvalidTransition, 400},
		{"dealer not found", model.ErrDealerNotFound, 404},
		{"insufficient stock", model.ErrInsufficientStock, 409},
		{"inactive dealer", model.ErrDealerInactive, 409},
		{"duplicate key", gorm.ErrDuplicatedKey, 409},
		{"wrapped duplicate key", fmt.Errorf("create godown: %w", gorm.ErrDuplicatedKey), 409},
		{"unknown storage failure", errors.New("connection reset"), 500},
	}

	log := zap.NewNop()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(c *fiber.Ctx) error {
				return respondError(c, log, tc.err)
			})

			req, err := http.NewRequest(http.MethodGet, "/fail", nil)
			if err != nil {
				t.Fatalf("build request: %v", err)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("test request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
