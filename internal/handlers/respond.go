package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
)

// respondError maps a service error to the error envelope. Unknown
// errors are logged server-side and reach the client as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	appErr := apperr.From(err)
	if appErr.Status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(appErr.Status).JSON(dto.Err(appErr.Message))
}

// pagination extracts page/limit query params with sane bounds.
func pagination(c *fiber.Ctx) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}
