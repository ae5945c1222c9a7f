package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func requestMeta(c *fiber.Ctx) services.RequestMeta {
	return services.RequestMeta{IP: c.IP(), UserAgent: c.Get("User-Agent")}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.Register(&req, requestMeta(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	resp, err := h.authService.Login(&req, requestMeta(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK(resp))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.OK(resp))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}

	if err := h.authService.Logout(&req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("Logged out successfully"))
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	user, err := h.authService.Me(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(user))
}

func (h *AuthHandler) Deactivate(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	if err := h.authService.Deactivate(userID, requestMeta(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Msg("Account deactivated successfully"))
}

func (h *AuthHandler) ExportData(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
	}

	export, err := h.authService.ExportData(userID, requestMeta(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(export))
}

// ForgotPassword replies identically whether or not the account exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.ForgotPassword(req.Email, requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("If the email exists, a reset link has been sent"))
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.ResetPassword(&req, requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("Password reset successful"))
}

// SendOTP replies identically whether or not the account exists.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req dto.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.SendOTP(req.Email, requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("If the email exists, a code has been sent"))
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.VerifyOTP(&req, requestMeta(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.Msg("Code verified"))
}
