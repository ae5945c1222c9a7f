package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

type DoctorHandler struct {
	doctorService *services.DoctorService
}

func NewDoctorHandler(doctorService *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

func (h *DoctorHandler) CreateAvailability(c *fiber.Ctx) error {
	doctorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	var req dto.CreateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	slot, err := h.doctorService.CreateAvailability(doctorID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(slot))
}

func (h *DoctorHandler) Search(c *fiber.Ctx) error {
	results, err := h.doctorService.Search(c.Query("specialty"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(results))
}
