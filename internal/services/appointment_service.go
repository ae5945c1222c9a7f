package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentService struct {
	db       *gorm.DB
	audit    *AuditService
	dispatch *Dispatcher
}

func NewAppointmentService(db *gorm.DB, audit *AuditService, dispatch *Dispatcher) *AppointmentService {
	return &AppointmentService{db: db, audit: audit, dispatch: dispatch}
}

// Book creates an appointment inside one transaction:
//
//  1. replay check on the idempotency key — a retried request returns the
//     existing appointment with no new row and no repeated side effects;
//  2. exclusive row lock on the availability slot (SELECT ... FOR
//     UPDATE), so concurrent attempts on the same slot serialize and all
//     but one observe is_booked=true;
//  3. insert the pending appointment;
//  4. flip the slot to booked.
//
// Any failure rolls the whole transaction back; no partial booking state
// is ever observable. The audit write happens after commit and is
// best-effort.
func (s *AppointmentService) Book(patientID, availabilityID uuid.UUID, scheduledAt time.Time, idempotencyKey string, meta RequestMeta) (*models.Appointment, bool, error) {
	var appt models.Appointment
	replayed := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Appointment
		err := tx.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error
		if err == nil {
			appt = existing
			replayed = true
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		var slot models.DoctorAvailability
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ?", availabilityID).Error
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("Availability slot not found")
		}
		if err != nil {
			return err
		}

		if slot.IsBooked {
			return apperr.Conflict("This slot is already booked")
		}

		appt = models.Appointment{
			ID:             uuid.New(),
			PatientID:      patientID,
			DoctorID:       slot.DoctorID,
			AvailabilityID: availabilityID,
			ScheduledAt:    scheduledAt,
			Status:         models.StatusPending,
			IdempotencyKey: idempotencyKey,
		}
		if err := tx.Create(&appt).Error; err != nil {
			return err
		}

		return tx.Model(&slot).Update("is_booked", true).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race on one of the unique indexes: either the same
		// idempotency key landed twice concurrently, or another booking
		// claimed the slot between our lock release and insert.
		var existing models.Appointment
		found := s.db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error == nil
		return duplicateKeyOutcome(&existing, found)
	}
	if err != nil {
		return nil, false, err
	}

	if !replayed {
		s.audit.Log(AuditEntry{
			UserID:     &patientID,
			Role:       models.RolePatient,
			ActionCode: models.ActionAppointmentCreated,
			EntityType: "APPOINTMENT",
			EntityID:   appt.ID.String(),
			IPAddress:  meta.IP,
			UserAgent:  meta.UserAgent,
		})
		s.dispatch.AppointmentBooked(&appt)
	}

	return &appt, replayed, nil
}

// duplicateKeyOutcome maps a unique-index violation during booking to
// its caller-visible result. A row found under the same idempotency key
// means the request already succeeded: replay it. Otherwise the slot's
// unique index fired and the booking is a conflict.
func duplicateKeyOutcome(existing *models.Appointment, found bool) (*models.Appointment, bool, error) {
	if found {
		return existing, true, nil
	}
	return nil, false, apperr.Conflict("This slot is already booked")
}

// Cancel soft-deletes the appointment if it belongs to the requesting
// user and is not already deleted. The availability slot is deliberately
// not released.
func (s *AppointmentService) Cancel(appointmentID, userID uuid.UUID, role models.Role, meta RequestMeta) error {
	var appt models.Appointment
	if err := s.db.First(&appt, "id = ? AND patient_id = ?", appointmentID, userID).Error; err != nil {
		return apperr.NotFound("Appointment not found or already cancelled")
	}

	result := s.db.Where("id = ? AND patient_id = ?", appointmentID, userID).
		Delete(&models.Appointment{})
	if result.Error != nil {
		return fmt.Errorf("failed to cancel appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Appointment not found or already cancelled")
	}

	s.audit.Log(AuditEntry{
		UserID:     &userID,
		Role:       role,
		ActionCode: models.ActionAppointmentCancelled,
		EntityType: "APPOINTMENT",
		EntityID:   appointmentID.String(),
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})
	s.dispatch.AppointmentCancelled(&appt)
	return nil
}

// UpdateStatus moves an appointment to a validated status and records
// the before/after values in the audit log.
func (s *AppointmentService) UpdateStatus(appointmentID uuid.UUID, newStatus models.AppointmentStatus, actorID uuid.UUID, role models.Role, meta RequestMeta) error {
	if !newStatus.ValidTransitionTarget() {
		return apperr.Validation("Invalid status value")
	}

	var appt models.Appointment
	if err := s.db.First(&appt, "id = ?", appointmentID).Error; err != nil {
		return apperr.NotFound("Appointment not found")
	}

	oldStatus := appt.Status
	if err := s.db.Model(&appt).Update("status", newStatus).Error; err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &actorID,
		Role:       role,
		ActionCode: models.ActionAppointmentStatusChanged,
		EntityType: "APPOINTMENT",
		EntityID:   appointmentID.String(),
		Metadata:   map[string]interface{}{"from": oldStatus, "to": newStatus},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})
	s.dispatch.AppointmentStatusChanged(&appt, newStatus)
	return nil
}

// ListForUser returns the caller's appointments newest first. Doctors
// see appointments where they are the doctor, everyone else where they
// are the patient.
func (s *AppointmentService) ListForUser(userID uuid.UUID, role models.Role, limit, offset int) ([]models.Appointment, int64, error) {
	column := "patient_id"
	if role == models.RoleDoctor {
		column = "doctor_id"
	}

	var total int64
	if err := s.db.Model(&models.Appointment{}).
		Where(column+" = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appts []models.Appointment
	err := s.db.Where(column+" = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&appts).Error
	return appts, total, err
}

// MarkNoShows bulk-transitions confirmed appointments whose scheduled
// time is more than 15 minutes past to no_show. Other statuses are
// untouched.
func (s *AppointmentService) MarkNoShows() (int64, error) {
	cutoff := time.Now().Add(-15 * time.Minute)
	result := s.db.Model(&models.Appointment{}).
		Where("status = ? AND scheduled_at < ?", models.StatusConfirmed, cutoff).
		Update("status", models.StatusNoShow)
	return result.RowsAffected, result.Error
}
