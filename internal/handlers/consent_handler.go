package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

type ConsentHandler struct {
	consentService *services.ConsentService
}

func NewConsentHandler(consentService *services.ConsentService) *ConsentHandler {
	return &ConsentHandler{consentService: consentService}
}

func (h *ConsentHandler) Accept(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	var req dto.AcceptConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.consentService.Accept(userID, models.ConsentType(req.ConsentType), requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Msg("Consent recorded"))
}

func (h *ConsentHandler) Status(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	status, err := h.consentService.CheckStatus(userID, models.ConsentType(c.Params("type")))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK(status))
}
