package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return apperr.Validation("a valid email is required")
	}
	if len(r.Password) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apperr.Validation("email and password are required")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return apperr.Validation("refresh_token is required")
	}
	return nil
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

func (r *EmailRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return apperr.Validation("a valid email is required")
	}
	return nil
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *VerifyOTPRequest) Validate() error {
	if r.Email == "" || len(r.OTP) != 6 {
		return apperr.Validation("email and 6-digit otp are required")
	}
	return nil
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	if r.Token == "" {
		return apperr.Validation("token is required")
	}
	if len(r.Password) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}
	return nil
}

type UserResponse struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// DataExport bundles everything stored about a user for a
// take-your-data-with-you download.
type DataExport struct {
	Profile      UserResponse         `json:"profile"`
	Appointments []models.Appointment `json:"appointments"`
	Consents     []models.ConsentLog  `json:"consents"`
}
