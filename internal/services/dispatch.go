package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"github.com/medilinkhq/telehealth-backend/internal/queue"
	"gorm.io/gorm"
)

// Dispatcher fans appointment side effects out to the in-process
// notification and email queues. Everything here is best-effort: a full
// queue is logged and the item dropped, never surfaced to the request.
type Dispatcher struct {
	db            *gorm.DB
	notifications *queue.Queue[NotificationJob]
	emails        *queue.Queue[EmailJob]
}

func NewDispatcher(db *gorm.DB, notifications *queue.Queue[NotificationJob], emails *queue.Queue[EmailJob]) *Dispatcher {
	return &Dispatcher{db: db, notifications: notifications, emails: emails}
}

func (d *Dispatcher) AppointmentBooked(appt *models.Appointment) {
	when := appt.ScheduledAt.Format("Jan 2, 2006 at 15:04")

	d.notify(appt.PatientID, "Appointment booked",
		fmt.Sprintf("Your appointment on %s is pending confirmation.", when), "APPOINTMENT")
	d.notify(appt.DoctorID, "New appointment",
		fmt.Sprintf("A patient booked your slot on %s.", when), "APPOINTMENT")
	d.email(appt.PatientID, "Appointment booked",
		fmt.Sprintf("Your appointment on %s was received and is pending confirmation.", when))
}

func (d *Dispatcher) AppointmentCancelled(appt *models.Appointment) {
	when := appt.ScheduledAt.Format("Jan 2, 2006 at 15:04")

	d.notify(appt.DoctorID, "Appointment cancelled",
		fmt.Sprintf("The appointment on %s was cancelled by the patient.", when), "APPOINTMENT")
	d.email(appt.PatientID, "Appointment cancelled",
		fmt.Sprintf("Your appointment on %s has been cancelled.", when))
}

func (d *Dispatcher) AppointmentStatusChanged(appt *models.Appointment, newStatus models.AppointmentStatus) {
	when := appt.ScheduledAt.Format("Jan 2, 2006 at 15:04")

	d.notify(appt.PatientID, "Appointment updated",
		fmt.Sprintf("Your appointment on %s is now %s.", when, newStatus), "APPOINTMENT")
	d.email(appt.PatientID, "Appointment updated",
		fmt.Sprintf("The status of your appointment on %s changed to %s.", when, newStatus))
}

// PasswordResetIssued queues the reset email carrying the raw token.
func (d *Dispatcher) PasswordResetIssued(email, token string) {
	if d == nil || d.emails == nil {
		return
	}
	d.emails.Enqueue(EmailJob{
		To:      email,
		Subject: "Password reset requested",
		Body:    fmt.Sprintf("Use this token to reset your password: %s. It expires shortly.", token),
	})
}

// OTPIssued queues the one-time login code email.
func (d *Dispatcher) OTPIssued(email, code string) {
	if d == nil || d.emails == nil {
		return
	}
	d.emails.Enqueue(EmailJob{
		To:      email,
		Subject: "Your verification code",
		Body:    fmt.Sprintf("Your one-time code is %s. It expires shortly.", code),
	})
}

func (d *Dispatcher) notify(userID uuid.UUID, title, body, typ string) {
	if d == nil || d.notifications == nil {
		return
	}
	d.notifications.Enqueue(NotificationJob{UserID: userID, Title: title, Body: body, Type: typ})
}

func (d *Dispatcher) email(userID uuid.UUID, subject, body string) {
	if d == nil || d.emails == nil {
		return
	}
	var user models.User
	if err := d.db.Select("email").First(&user, "id = ?", userID).Error; err != nil {
		slog.Warn("email dispatch skipped, user lookup failed", "user_id", userID, "error", err)
		return
	}
	d.emails.Enqueue(EmailJob{To: user.Email, Subject: subject, Body: body})
}
