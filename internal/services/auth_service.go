package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/medilinkhq/telehealth-backend/internal/apperr"
	"github.com/medilinkhq/telehealth-backend/internal/config"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	audit    *AuditService
	dispatch *Dispatcher
}

func NewAuthService(db *gorm.DB, cfg *config.Config, audit *AuditService, dispatch *Dispatcher) *AuthService {
	return &AuthService{db: db, cfg: cfg, audit: audit, dispatch: dispatch}
}

// RequestMeta carries the request attributes audit rows record.
type RequestMeta struct {
	IP        string
	UserAgent string
}

func (s *AuthService) Register(req *dto.RegisterRequest, meta RequestMeta) (*dto.UserResponse, error) {
	role := models.ParseRole(req.Role)

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &user.ID,
		Role:       user.Role,
		ActionCode: models.ActionProfileCreated,
		EntityType: "USER",
		EntityID:   user.ID.String(),
		Metadata:   map[string]interface{}{"email": user.Email, "role": user.Role},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})

	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest, meta RequestMeta) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		s.audit.Log(AuditEntry{
			ActionCode: models.ActionLoginFailure,
			EntityType: "USER",
			Metadata:   map[string]interface{}{"email": req.Email, "reason": "EMAIL_NOT_FOUND"},
			IPAddress:  meta.IP,
			UserAgent:  meta.UserAgent,
		})
		return nil, apperr.Auth("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.audit.Log(AuditEntry{
			UserID:     &user.ID,
			Role:       user.Role,
			ActionCode: models.ActionLoginFailure,
			EntityType: "USER",
			EntityID:   user.ID.String(),
			Metadata:   map[string]interface{}{"email": req.Email, "reason": "INVALID_PASSWORD"},
			IPAddress:  meta.IP,
			UserAgent:  meta.UserAgent,
		})
		return nil, apperr.Auth("Invalid credentials")
	}

	s.audit.Log(AuditEntry{
		UserID:     &user.ID,
		Role:       user.Role,
		ActionCode: models.ActionLoginSuccess,
		EntityType: "USER",
		EntityID:   user.ID.String(),
		Metadata:   map[string]interface{}{"email": user.Email},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})

	return s.generateTokenPair(&user)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, apperr.Auth("Invalid or expired refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, apperr.Auth("Invalid or expired refresh token")
	}

	// Single use: rotate on every refresh.
	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, apperr.Auth("Invalid or expired refresh token")
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) Me(userID uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperr.NotFound("User not found")
	}
	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// ForgotPassword issues a single-use reset token. The response is
// identical whether or not the account exists.
func (s *AuthService) ForgotPassword(email string, meta RequestMeta) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	rawToken, err := randomToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	reset := models.PasswordReset{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.ResetTokenExpiry),
	}
	if err := s.db.Create(&reset).Error; err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &user.ID,
		Role:       user.Role,
		ActionCode: models.ActionPasswordResetRequested,
		EntityType: "USER",
		EntityID:   user.ID.String(),
		Metadata:   map[string]interface{}{"email": email},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})

	// Delivery is queued; in development the token is also logged for
	// manual testing.
	s.dispatch.PasswordResetIssued(user.Email, rawToken)
	if s.cfg.IsDevelopment() {
		slog.Info("password reset token issued", "user_id", user.ID, "token", rawToken)
	}
	return nil
}

func (s *AuthService) ResetPassword(req *dto.ResetPasswordRequest, meta RequestMeta) error {
	tokenHash := hashToken(req.Token)

	var reset models.PasswordReset
	if err := s.db.Where("token_hash = ?", tokenHash).First(&reset).Error; err != nil {
		return apperr.Validation("Invalid or expired reset link")
	}

	if reset.Used || time.Now().After(reset.ExpiresAt) {
		return apperr.Validation("Reset link has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used", true).Error
	})
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &reset.UserID,
		ActionCode: models.ActionPasswordResetCompleted,
		EntityType: "USER",
		EntityID:   reset.UserID.String(),
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})
	return nil
}

// SendOTP issues a fresh one-time code, invalidating previous ones. The
// response is identical whether or not the account exists.
func (s *AuthService) SendOTP(email string, meta RequestMeta) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.EmailOTP{}).Where("user_id = ?", user.ID).
			Update("used", true).Error; err != nil {
			return err
		}
		return tx.Create(&models.EmailOTP{
			ID:        uuid.New(),
			UserID:    user.ID,
			OTPHash:   hashToken(otp),
			ExpiresAt: time.Now().Add(s.cfg.OTPExpiry),
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &user.ID,
		Role:       user.Role,
		ActionCode: models.ActionOTPSent,
		EntityType: "USER",
		EntityID:   user.ID.String(),
		Metadata:   map[string]interface{}{"email": email},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})

	s.dispatch.OTPIssued(user.Email, otp)
	if s.cfg.IsDevelopment() {
		slog.Info("otp issued", "user_id", user.ID, "otp", otp)
	}
	return nil
}

func (s *AuthService) VerifyOTP(req *dto.VerifyOTPRequest, meta RequestMeta) error {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return apperr.Validation("Invalid or expired code")
	}

	var otp models.EmailOTP
	err := s.db.Where("user_id = ? AND otp_hash = ?", user.ID, hashToken(req.OTP)).First(&otp).Error
	if err != nil || otp.Used || time.Now().After(otp.ExpiresAt) {
		return apperr.Validation("Invalid or expired code")
	}

	if err := s.db.Model(&otp).Update("used", true).Error; err != nil {
		return fmt.Errorf("failed to mark otp used: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &user.ID,
		Role:       user.Role,
		ActionCode: models.ActionOTPVerified,
		EntityType: "USER",
		EntityID:   user.ID.String(),
		Metadata:   map[string]interface{}{"email": req.Email},
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})
	return nil
}

// Deactivate soft-deletes the caller's account and revokes their refresh
// tokens. The row stays recoverable until the retention job hard-deletes
// it after the configured window.
func (s *AuthService) Deactivate(userID uuid.UUID, meta RequestMeta) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return apperr.NotFound("User not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RefreshToken{}).
			Where("user_id = ?", userID).
			Update("revoked", true).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.audit.Log(AuditEntry{
		UserID:     &userID,
		Role:       user.Role,
		ActionCode: models.ActionUserDeactivated,
		EntityType: "USER",
		EntityID:   userID.String(),
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})
	return nil
}

// ExportData returns the user's profile, appointments and consent history
// in one payload.
func (s *AuthService) ExportData(userID uuid.UUID, meta RequestMeta) (*dto.DataExport, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperr.NotFound("User not found")
	}

	var appointments []models.Appointment
	if err := s.db.Where("patient_id = ?", userID).
		Order("created_at DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	var consents []models.ConsentLog
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&consents).Error; err != nil {
		return nil, err
	}

	s.audit.Log(AuditEntry{
		UserID:     &userID,
		Role:       user.Role,
		ActionCode: models.ActionDataExported,
		EntityType: "USER",
		EntityID:   userID.String(),
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
	})

	return &dto.DataExport{
		Profile:      dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
		Appointments: appointments,
		Consents:     consents,
	}, nil
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawToken, err := randomToken()
	if err != nil {
		return "", err
	}

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func randomToken() (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", errors.New("failed to generate random bytes")
	}
	return base64.URLEncoding.EncodeToString(rawBytes), nil
}

// generateOTP returns a 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
