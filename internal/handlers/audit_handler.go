package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List returns paginated audit rows. Admin-gated at the route.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)

	logs, total, err := h.auditService.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.PagedResponse{
		Success:    true,
		Data:       logs,
		Pagination: dto.NewPagination(page, limit, total),
	})
}
