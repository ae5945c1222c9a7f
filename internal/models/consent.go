package models

import (
	"time"

	"github.com/google/uuid"
)

type ConsentType string

const (
	ConsentAIAnalysis    ConsentType = "AI_ANALYSIS"
	ConsentTerms         ConsentType = "TERMS_OF_SERVICE"
	ConsentPrivacyPolicy ConsentType = "PRIVACY_POLICY"
	ConsentDataSharing   ConsentType = "DATA_SHARING"
)

// RequiredConsentVersions is the currently required version per consent
// type. Bumping a version here invalidates all previously accepted
// consents of that type, forcing re-consent.
var RequiredConsentVersions = map[ConsentType]string{
	ConsentAIAnalysis:    "v1.0",
	ConsentTerms:         "v1.2",
	ConsentPrivacyPolicy: "v1.1",
	ConsentDataSharing:   "v1.0",
}

// ConsentLog is append-only; the most recent row per (user, type) is the
// current consent state.
type ConsentLog struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_consent_user_type" json:"user_id"`
	ConsentType ConsentType `gorm:"size:50;not null;index:idx_consent_user_type" json:"consent_type"`
	Version     string      `gorm:"size:10;not null" json:"version"`
	Accepted    bool        `gorm:"not null;default:true" json:"accepted"`
	CreatedAt   time.Time   `json:"created_at"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
}
