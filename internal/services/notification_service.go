package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"gorm.io/gorm"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotificationJob is what gets pushed onto the dispatch queue; the queue
// worker turns it into a row via Create.
type NotificationJob struct {
	UserID uuid.UUID
	Title  string
	Body   string
	Type   string
}

// EmailJob is a queued outbound email.
type EmailJob struct {
	To      string
	Subject string
	Body    string
}

// Create persists a notification. Called by the queue worker, not by
// request handlers directly.
func (s *NotificationService) Create(job NotificationJob) error {
	if job.UserID == uuid.Nil || job.Title == "" || job.Body == "" {
		return errors.New("invalid notification payload")
	}
	n := models.Notification{
		ID:     uuid.New(),
		UserID: job.UserID,
		Title:  job.Title,
		Body:   job.Body,
		Type:   job.Type,
	}
	if err := s.db.Create(&n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *NotificationService) ListForUser(userID uuid.UUID, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (s *NotificationService) MarkRead(notificationID, userID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Notification not found")
	}
	return nil
}

func (s *NotificationService) Delete(notificationID, userID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Notification not found")
	}
	return nil
}
