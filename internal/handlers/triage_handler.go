package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

type TriageHandler struct {
	triageService *services.TriageService
}

func NewTriageHandler(triageService *services.TriageService) *TriageHandler {
	return &TriageHandler{triageService: triageService}
}

// Analyze runs the symptom analysis pipeline. The consent gate comes
// first: without current AI consent the request is rejected with the
// structured consent-required response, not a generic error.
func (h *TriageHandler) Analyze(c *fiber.Ctx) error {
	patientID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	status, err := h.triageService.ConsentStatus(patientID)
	if err != nil {
		return respondError(c, err)
	}
	if !status.Accepted {
		return c.Status(fiber.StatusForbidden).JSON(dto.ConsentRequiredResponse{
			Success:         false,
			Message:         "AI consent required before symptom analysis",
			ConsentRequired: true,
			RequiredVersion: status.RequiredVersion,
		})
	}

	if cached := h.triageService.CachedResult(patientID, &req); cached != nil {
		return c.JSON(fiber.Map{"success": true, "data": cached, "cached": true})
	}

	result, err := h.triageService.Analyze(patientID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": result, "cached": false})
}
