package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"gorm.io/gorm"
)

type ConsentService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewConsentService(db *gorm.DB, audit *AuditService) *ConsentService {
	return &ConsentService{db: db, audit: audit}
}

// ConsentStatus is the result of checking a user against the required
// version table.
type ConsentStatus struct {
	Accepted        bool   `json:"accepted"`
	AcceptedVersion string `json:"accepted_version,omitempty"`
	RequiredVersion string `json:"required_version"`
}

// Accept appends a consent row at the currently required version.
func (s *ConsentService) Accept(userID uuid.UUID, consentType models.ConsentType, meta RequestMeta) error {
	version, ok := models.RequiredConsentVersions[consentType]
	if !ok {
		return apperr.Validation("Invalid consent type")
	}

	row := models.ConsentLog{
		ID:          uuid.New(),
		UserID:      userID,
		ConsentType: consentType,
		Version:     version,
		Accepted:    true,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record consent: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &userID,
		ActionCode: models.ActionConsentAccepted,
		EntityType: "CONSENT",
		EntityID:   row.ID.String(),
		Metadata:   map[string]interface{}{"type": consentType, "version": version},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})
	return nil
}

// CheckStatus reports whether the user's most recent consent row for the
// type matches the required version. An older accepted consent counts as
// not accepted, forcing re-consent after a version bump.
func (s *ConsentService) CheckStatus(userID uuid.UUID, consentType models.ConsentType) (ConsentStatus, error) {
	required, ok := models.RequiredConsentVersions[consentType]
	if !ok {
		return ConsentStatus{}, apperr.Validation("Invalid consent type")
	}

	var latest models.ConsentLog
	err := s.db.Where("user_id = ? AND consent_type = ?", userID, consentType).
		Order("created_at DESC").
		First(&latest).Error
	if err == gorm.ErrRecordNotFound {
		return ConsentStatus{Accepted: false, RequiredVersion: required}, nil
	}
	if err != nil {
		return ConsentStatus{}, err
	}

	return ConsentStatus{
		Accepted:        latest.Accepted && latest.Version == required,
		AcceptedVersion: latest.Version,
		RequiredVersion: required,
	}, nil
}
