package services

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/cache"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"github.com/medilinkhq/telehealth-backend/internal/triage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const analysisCacheTTL = 5 * time.Minute

type TriageService struct {
	db      *gorm.DB
	consent *ConsentService
	audit   *AuditService
	cache   *cache.Cache
}

func NewTriageService(db *gorm.DB, consent *ConsentService, audit *AuditService, c *cache.Cache) *TriageService {
	return &TriageService{db: db, consent: consent, audit: audit, cache: c}
}

// ConsentStatus exposes the consent gate to the handler so a rejection
// can carry the structured consent-required response.
func (s *TriageService) ConsentStatus(patientID uuid.UUID) (ConsentStatus, error) {
	return s.consent.CheckStatus(patientID, models.ConsentAIAnalysis)
}

// CachedResult returns a memoized analysis for the exact same patient
// and payload, if one is fresh.
func (s *TriageService) CachedResult(patientID uuid.UUID, req *dto.AnalyzeRequest) *dto.AnalyzeResponse {
	if v := s.cache.Get(analysisCacheKey(patientID, req)); v != nil {
		if resp, ok := v.(*dto.AnalyzeResponse); ok {
			return resp
		}
	}
	return nil
}

// Analyze runs the full pipeline: persist the immutable symptom report,
// detect red flags, score (skipped entirely when a red flag fired),
// classify, explain, and append the AI decision. The result is cached
// per patient and payload.
func (s *TriageService) Analyze(patientID uuid.UUID, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	var age *int
	var patient models.User
	if err := s.db.First(&patient, "id = ?", patientID).Error; err == nil {
		age = patient.Age
	}

	in := triage.Input{
		Symptoms:         req.Symptoms,
		BodyPart:         req.BodyPart,
		Severity:         req.Severity,
		DurationDays:     req.DurationDays,
		Frequency:        req.Frequency,
		PreviousEpisodes: req.PreviousEpisodes,
		Age:              age,
	}

	symptomsJSON, _ := json.Marshal(req.Symptoms)
	triggersJSON, _ := json.Marshal(req.Triggers)

	report := models.SymptomReport{
		ID:               uuid.New(),
		PatientID:        patientID,
		BodyPart:         req.BodyPart,
		Symptoms:         datatypes.JSON(symptomsJSON),
		Severity:         req.Severity,
		DurationDays:     req.DurationDays,
		Frequency:        req.Frequency,
		Triggers:         datatypes.JSON(triggersJSON),
		PreviousEpisodes: req.PreviousEpisodes,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to store symptom report: %w", err)
	}

	flagResult := triage.DetectRedFlags(in)
	for _, flag := range flagResult.Flags {
		event := models.RedFlagEvent{
			ID:              uuid.New(),
			SymptomReportID: report.ID,
			FlagCode:        flag.Code,
			Description:     flag.Description,
		}
		if err := s.db.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to store red flag event: %w", err)
		}
	}

	// Red flags force an emergency classification; scoring is skipped.
	score := triage.ScoreResult{}
	if !flagResult.HasRedFlag {
		score = triage.CalculateRiskScore(in)
	}

	classification := triage.ClassifyRisk(score.RiskScore, flagResult.HasRedFlag)
	explanation := triage.GenerateExplanation(classification.RiskLevel, score.RiskScore, score.Breakdown, flagResult.Flags)

	factorsJSON, _ := json.Marshal(explanation.ContributingFactors)
	decision := models.AIDecision{
		ID:                  uuid.New(),
		SymptomReportID:     report.ID,
		RiskScore:           score.RiskScore,
		RiskLevel:           string(classification.RiskLevel),
		Confidence:          classification.Confidence,
		ContributingFactors: datatypes.JSON(factorsJSON),
		Explanation:         explanation.Summary,
		RuleWeight:          0.7,
		HeuristicWeight:     0.3,
	}
	if err := s.db.Create(&decision).Error; err != nil {
		return nil, fmt.Errorf("failed to store ai decision: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &patientID,
		Role:       models.RolePatient,
		ActionCode: models.ActionAIAnalysisRun,
		EntityType: "SYMPTOM_REPORT",
		EntityID:   report.ID.String(),
		Metadata:   map[string]interface{}{"risk_level": classification.RiskLevel, "risk_score": score.RiskScore},
	})

	resp := &dto.AnalyzeResponse{
		SymptomReportID: report.ID,
		Risk:            classification,
		RiskScore:       score.RiskScore,
		Breakdown:       score.Breakdown,
		Explanation:     explanation,
	}
	s.cache.Set(analysisCacheKey(patientID, req), resp, analysisCacheTTL)

	return resp, nil
}

func analysisCacheKey(patientID uuid.UUID, req *dto.AnalyzeRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("ai_analysis:%s:%x", patientID, sum)
}
