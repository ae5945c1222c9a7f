package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/config"
	"github.com/medilinkhq/telehealth-backend/internal/database"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(fiber.Map{
		"service":     h.cfg.ServiceName,
		"environment": h.cfg.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"db":          dbStatus,
	})
}
