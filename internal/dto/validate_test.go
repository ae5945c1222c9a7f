package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
)

func assertValidation(t *testing.T, err error, wantInvalid bool) {
	t.Helper()
	if wantInvalid {
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("err = %v, want validation error", err)
		}
		return
	}
	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		invalid bool
	}{
		{"valid", RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "supersecret"}, false},
		{"blank name", RegisterRequest{Name: "  ", Email: "ada@example.com", Password: "supersecret"}, true},
		{"bad email", RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "supersecret"}, true},
		{"short password", RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.invalid)
		})
	}
}

func TestAnalyzeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		invalid bool
	}{
		{"valid", AnalyzeRequest{Symptoms: []string{"headache"}, Severity: 5, DurationDays: 2, Frequency: "rare"}, false},
		{"empty frequency allowed", AnalyzeRequest{Symptoms: []string{"headache"}, Severity: 5}, false},
		{"no symptoms", AnalyzeRequest{Severity: 5}, true},
		{"severity too low", AnalyzeRequest{Symptoms: []string{"headache"}, Severity: 0}, true},
		{"severity too high", AnalyzeRequest{Symptoms: []string{"headache"}, Severity: 11}, true},
		{"negative duration", AnalyzeRequest{Symptoms: []string{"headache"}, Severity: 5, DurationDays: -1}, true},
		{"unknown frequency", AnalyzeRequest{Symptoms: []string{"headache"}, Severity: 5, Frequency: "hourly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.invalid)
		})
	}
}

func TestBookAppointmentRequestValidate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		req     BookAppointmentRequest
		invalid bool
	}{
		{"valid", BookAppointmentRequest{AvailabilityID: uuid.New(), ScheduledAt: now}, false},
		{"missing availability", BookAppointmentRequest{ScheduledAt: now}, true},
		{"missing time", BookAppointmentRequest{AvailabilityID: uuid.New()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.invalid)
		})
	}
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		status  models.AppointmentStatus
		invalid bool
	}{
		{"confirmed", models.StatusConfirmed, false},
		{"cancelled", models.StatusCancelled, false},
		{"completed", models.StatusCompleted, false},
		{"no_show", models.StatusNoShow, false},
		{"pending is not a target", models.StatusPending, true},
		{"unknown", models.AppointmentStatus("archived"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := UpdateStatusRequest{Status: tt.status}
			assertValidation(t, req.Validate(), tt.invalid)
		})
	}
}

func TestCreateAvailabilityRequestValidate(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	start := day.Add(9 * time.Hour)
	end := day.Add(10 * time.Hour)

	tests := []struct {
		name    string
		req     CreateAvailabilityRequest
		invalid bool
	}{
		{"valid", CreateAvailabilityRequest{Date: day, StartTime: start, EndTime: end}, false},
		{"missing date", CreateAvailabilityRequest{StartTime: start, EndTime: end}, true},
		{"end before start", CreateAvailabilityRequest{Date: day, StartTime: end, EndTime: start}, true},
		{"zero length slot", CreateAvailabilityRequest{Date: day, StartTime: start, EndTime: start}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.invalid)
		})
	}
}

func TestSendMessageRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SendMessageRequest
		invalid bool
	}{
		{"valid", SendMessageRequest{ConversationID: uuid.New(), Body: "hello"}, false},
		{"missing conversation", SendMessageRequest{Body: "hello"}, true},
		{"whitespace body", SendMessageRequest{ConversationID: uuid.New(), Body: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.invalid)
		})
	}
}
