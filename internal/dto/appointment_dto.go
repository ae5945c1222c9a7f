package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
)

type BookAppointmentRequest struct {
	AvailabilityID uuid.UUID `json:"availability_id"`
	ScheduledAt    time.Time `json:"scheduled_at"`
}

func (r *BookAppointmentRequest) Validate() error {
	if r.AvailabilityID == uuid.Nil {
		return apperr.Validation("availability_id is required")
	}
	if r.ScheduledAt.IsZero() {
		return apperr.Validation("scheduled_at is required")
	}
	return nil
}

type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !r.Status.ValidTransitionTarget() {
		return apperr.Validation("invalid status value")
	}
	return nil
}

type CreateAvailabilityRequest struct {
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (r *CreateAvailabilityRequest) Validate() error {
	if r.Date.IsZero() || r.StartTime.IsZero() || r.EndTime.IsZero() {
		return apperr.Validation("date, start_time and end_time are required")
	}
	if !r.EndTime.After(r.StartTime) {
		return apperr.Validation("end_time must be after start_time")
	}
	return nil
}
