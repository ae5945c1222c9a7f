package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"gorm.io/gorm"
)

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// CreateConversation returns the conversation for an appointment the
// patient owns, creating it if absent. One conversation per appointment.
func (s *ChatService) CreateConversation(patientID, appointmentID uuid.UUID) (*models.Conversation, error) {
	var appt models.Appointment
	err := s.db.Where("id = ? AND patient_id = ?", appointmentID, patientID).First(&appt).Error
	if err != nil {
		return nil, apperr.NotFound("Invalid appointment or access denied")
	}

	var existing models.Conversation
	err = s.db.Where("appointment_id = ?", appointmentID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	conv := models.Conversation{
		ID:            uuid.New(),
		AppointmentID: appointmentID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
	}
	if err := s.db.Create(&conv).Error; err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &conv, nil
}

// GetConversation returns the conversation and its messages in creation
// order. Only participants and admins may read it.
func (s *ChatService) GetConversation(userID uuid.UUID, role models.Role, conversationID uuid.UUID) (*models.Conversation, []models.Message, error) {
	var conv models.Conversation
	if err := s.db.First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, nil, apperr.NotFound("Conversation not found")
	}

	allowed := role == models.RoleAdmin ||
		userID == conv.PatientID ||
		userID == conv.DoctorID
	if !allowed {
		return nil, nil, apperr.Forbidden("Access denied")
	}

	var messages []models.Message
	err := s.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, nil, err
	}
	return &conv, messages, nil
}

// SendMessage appends a message from a conversation participant.
func (s *ChatService) SendMessage(userID, conversationID uuid.UUID, body string) (*models.Message, error) {
	var conv models.Conversation
	if err := s.db.First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, apperr.NotFound("Conversation not found")
	}

	if userID != conv.PatientID && userID != conv.DoctorID {
		return nil, apperr.Forbidden("Not allowed to send message")
	}

	msg := models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       userID,
		Body:           strings.TrimSpace(body),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &msg, nil
}
