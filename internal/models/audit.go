package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit action codes.
const (
	ActionProfileCreated           = "PROFILE_CREATED"
	ActionUserDeactivated          = "USER_DEACTIVATED"
	ActionDataExported             = "DATA_EXPORTED"
	ActionLoginSuccess             = "LOGIN_SUCCESS"
	ActionLoginFailure             = "LOGIN_FAILURE"
	ActionOTPSent                  = "OTP_SENT"
	ActionOTPVerified              = "OTP_VERIFIED"
	ActionPasswordResetRequested   = "PASSWORD_RESET_REQUESTED"
	ActionPasswordResetCompleted   = "PASSWORD_RESET_COMPLETED"
	ActionAppointmentCreated       = "APPOINTMENT_CREATED"
	ActionAppointmentStatusChanged = "APPOINTMENT_STATUS_CHANGED"
	ActionAppointmentCancelled     = "APPOINTMENT_SOFT_DELETED"
	ActionConsentAccepted          = "CONSENT_ACCEPTED"
	ActionAIAnalysisRun            = "AI_ANALYSIS_RUN"
)

// AuditLog is append-only and never mutated. Rows older than the
// configured retention window are purged by a scheduled job.
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
	Role       string         `gorm:"size:20" json:"role"`
	ActionCode string         `gorm:"size:50;not null;index" json:"action_code"`
	EntityType string         `gorm:"size:50" json:"entity_type"`
	EntityID   string         `gorm:"size:64" json:"entity_id"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	IPAddress  string         `gorm:"size:45" json:"ip_address"`
	UserAgent  string         `gorm:"size:255" json:"user_agent"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}
