package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The month guard runs before any storage access, so a zero-value handler
// behind a stub auth middleware is enough to exercise it.
func newMonthFilterApp(h *TransactionHandler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uuid.New().String())
		return c.Next()
	})
	app.Get("/transactions", h.List)
	app.Get("/transactions/summary", h.Summary)
	return app
}

func TestListRejectsOutOfRangeMonth(t *testing.T) {
	app := newMonthFilterApp(&TransactionHandler{})

	targets := []string{
		"/transactions?month=13&year=2026",
		"/transactions?month=-1&year=2026",
		"/transactions/summary?month=13&year=2026",
		"/transactions/summary?month=-1&year=2026",
	}
	for _, target := range targets {
		req := httptest.NewRequest(fiber.MethodGet, target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}
