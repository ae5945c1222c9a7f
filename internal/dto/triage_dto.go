package dto

import (
	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/triage"
)

type AnalyzeRequest struct {
	Symptoms         []string `json:"symptoms"`
	BodyPart         string   `json:"body_part"`
	Severity         int      `json:"severity"`
	DurationDays     int      `json:"duration_days"`
	Frequency        string   `json:"frequency"`
	Triggers         []string `json:"triggers"`
	PreviousEpisodes bool     `json:"previous_episodes"`
}

func (r *AnalyzeRequest) Validate() error {
	if len(r.Symptoms) == 0 {
		return apperr.Validation("at least one symptom is required")
	}
	if r.Severity < 1 || r.Severity > 10 {
		return apperr.Validation("severity must be between 1 and 10")
	}
	if r.DurationDays < 0 {
		return apperr.Validation("duration_days must not be negative")
	}
	switch r.Frequency {
	case "", "rare", "intermittent", "continuous":
	default:
		return apperr.Validation("frequency must be rare, intermittent or continuous")
	}
	return nil
}

type AnalyzeResponse struct {
	SymptomReportID uuid.UUID             `json:"symptom_report_id"`
	Risk            triage.Classification `json:"risk"`
	RiskScore       int                   `json:"risk_score"`
	Breakdown       triage.Breakdown      `json:"breakdown"`
	Explanation     triage.Explanation    `json:"explanation"`
}

type AcceptConsentRequest struct {
	ConsentType string `json:"consent_type"`
}

func (r *AcceptConsentRequest) Validate() error {
	if r.ConsentType == "" {
		return apperr.Validation("consent_type is required")
	}
	return nil
}
