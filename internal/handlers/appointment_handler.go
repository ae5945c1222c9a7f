package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

type AppointmentHandler struct {
	appointments *services.AppointmentService
}

func NewAppointmentHandler(appointments *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// Book honors the Idempotency-Key header; when absent a key is generated
// server-side so a single request is still unique. A replayed key
// returns the original appointment with 200 instead of 201.
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	patientID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	idempotencyKey := c.Get("Idempotency-Key")
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	appt, replayed, err := h.appointments.Book(patientID, req.AvailabilityID, req.ScheduledAt, idempotencyKey, requestMeta(c))
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusCreated
	if replayed {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(dto.OK(appt))
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	page, limit, offset := pagination(c)
	appts, total, err := h.appointments.ListForUser(userID, middleware.UserRole(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.PagedResponse{
		Success:    true,
		Data:       appts,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	actorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid appointment id"))
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.appointments.UpdateStatus(appointmentID, req.Status, actorID, middleware.UserRole(c), requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("Appointment status updated successfully"))
}

func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid appointment id"))
	}

	if err := h.appointments.Cancel(appointmentID, userID, middleware.UserRole(c), requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("Appointment cancelled successfully"))
}
