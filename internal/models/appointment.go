package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus transitions: pending -> confirmed | cancelled |
// completed | no_show. There is no automatic transition except the
// no-show sweep (confirmed -> no_show).
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ValidTransitionTarget reports whether s is a status an existing
// appointment may be moved to. pending is the creation state only.
func (s AppointmentStatus) ValidTransitionTarget() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// DoctorAvailability is a bookable slot. IsBooked flips to true exactly
// once, under a row lock inside the booking transaction, and is never
// reset automatically.
type DoctorAvailability struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	IsBooked  bool      `gorm:"not null;default:false" json:"is_booked"`
	CreatedAt time.Time `json:"created_at"`
	Doctor    User      `gorm:"foreignKey:DoctorID" json:"-"`
}

type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AvailabilityID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"availability_id"`
	ScheduledAt    time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Status         AppointmentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	IdempotencyKey string            `gorm:"size:64;not null;uniqueIndex" json:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`

	Patient      User               `gorm:"foreignKey:PatientID" json:"-"`
	Doctor       User               `gorm:"foreignKey:DoctorID" json:"-"`
	Availability DoctorAvailability `gorm:"foreignKey:AvailabilityID" json:"-"`
}
