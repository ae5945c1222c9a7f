package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
)

type CreateConversationRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
}

func (r *CreateConversationRequest) Validate() error {
	if r.AppointmentID == uuid.Nil {
		return apperr.Validation("appointment_id is required")
	}
	return nil
}

type SendMessageRequest struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Body           string    `json:"body"`
}

func (r *SendMessageRequest) Validate() error {
	if r.ConversationID == uuid.Nil {
		return apperr.Validation("conversation_id is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return apperr.Validation("message body is required")
	}
	return nil
}
