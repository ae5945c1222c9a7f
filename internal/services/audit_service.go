package services

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// AuditEntry is the write-side shape of an audit event.
type AuditEntry struct {
	UserID     *uuid.UUID
	Role       models.Role
	ActionCode string
	EntityType string
	EntityID   string
	Metadata   map[string]interface{}
	IPAddress  string
	UserAgent  string
}

// Log appends an audit row. Audit is best-effort telemetry: a write
// failure is logged and swallowed so it can never fail or roll back the
// primary operation.
func (s *AuditService) Log(entry AuditEntry) {
	row := models.AuditLog{
		UserID:     entry.UserID,
		Role:       string(entry.Role),
		ActionCode: entry.ActionCode,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
	}

	if entry.Metadata != nil {
		if b, err := json.Marshal(entry.Metadata); err == nil {
			row.Metadata = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&row).Error; err != nil {
		slog.Error("audit log write failed",
			"action", entry.ActionCode, "entity_type", entry.EntityType, "error", err)
	}
}

// List returns audit rows newest first, with the total count for
// pagination. Admin only; enforced at the route.
func (s *AuditService) List(limit, offset int) ([]models.AuditLog, int64, error) {
	var total int64
	if err := s.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, total, err
}
