package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SymptomReport is immutable once written; one row per analysis request.
type SymptomReport struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PatientID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	BodyPart         string         `gorm:"size:100" json:"body_part"`
	Symptoms         datatypes.JSON `gorm:"type:jsonb;not null" json:"symptoms"`
	Severity         int            `gorm:"not null" json:"severity"`
	DurationDays     int            `gorm:"not null" json:"duration_days"`
	Frequency        string         `gorm:"size:20" json:"frequency"`
	Triggers         datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"triggers"`
	PreviousEpisodes bool           `gorm:"default:false" json:"previous_episodes"`
	CreatedAt        time.Time      `json:"created_at"`
	Patient          User           `gorm:"foreignKey:PatientID" json:"-"`
}

type RedFlagEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SymptomReportID uuid.UUID `gorm:"type:uuid;not null;index" json:"symptom_report_id"`
	FlagCode        string    `gorm:"size:10;not null" json:"flag_code"`
	Description     string    `gorm:"size:255;not null" json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}

// AIDecision is append-only; one per symptom report. The rule/heuristic
// weighting is fixed at 0.7/0.3.
type AIDecision struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SymptomReportID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"symptom_report_id"`
	RiskScore            int            `gorm:"not null" json:"risk_score"`
	RiskLevel            string         `gorm:"size:20;not null" json:"risk_level"`
	Confidence           float64        `gorm:"not null" json:"confidence"`
	ContributingFactors  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"contributing_factors"`
	Explanation          string         `gorm:"type:text" json:"explanation"`
	RuleWeight           float64        `gorm:"not null;default:0.7" json:"rule_weight"`
	HeuristicWeight      float64        `gorm:"not null;default:0.3" json:"heuristic_weight"`
	CreatedAt            time.Time      `json:"created_at"`
}
