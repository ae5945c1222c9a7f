package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/config"
	"github.com/medilinkhq/telehealth-backend/internal/handlers"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	appointmentHandler *handlers.AppointmentHandler,
	doctorHandler *handlers.DoctorHandler,
	triageHandler *handlers.TriageHandler,
	consentHandler *handlers.ConsentHandler,
	chatHandler *handlers.ChatHandler,
	notificationHandler *handlers.NotificationHandler,
	auditHandler *handlers.AuditHandler,
) {
	api := app.Group("/api")
	api.Use(middleware.RateLimit(middleware.GlobalLimit))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with stricter per-family limits on the abuse-prone
	// endpoints.
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(middleware.RegisterLimit), authHandler.Register)
	auth.Post("/login", middleware.RateLimit(middleware.LoginLimit), authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/forgot-password", middleware.RateLimit(middleware.LoginLimit), authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/send-otp", middleware.RateLimit(middleware.LoginLimit), authHandler.SendOTP)
	auth.Post("/verify-otp", authHandler.VerifyOTP)

	jwt := middleware.JWTProtected(cfg)

	api.Get("/users/me", jwt, authHandler.Me)
	api.Delete("/users/me", jwt, authHandler.Deactivate)
	api.Get("/users/me/export", jwt, authHandler.ExportData)

	// Appointments
	appointments := api.Group("/appointments", jwt)
	appointments.Post("/",
		middleware.RateLimit(middleware.BookingLimit),
		middleware.RequireRole(models.RolePatient),
		appointmentHandler.Book)
	appointments.Get("/", appointmentHandler.List)
	appointments.Patch("/:id/status",
		middleware.RequireRole(models.RoleDoctor, models.RoleAdmin),
		appointmentHandler.UpdateStatus)
	appointments.Delete("/:id",
		middleware.RequireRole(models.RolePatient),
		appointmentHandler.Cancel)

	// Doctors
	api.Get("/doctors/search", jwt, doctorHandler.Search)
	api.Post("/doctors/availability", jwt,
		middleware.RequireRole(models.RoleDoctor),
		doctorHandler.CreateAvailability)

	// Symptom analysis
	api.Post("/ai/analyze", jwt,
		middleware.RateLimit(middleware.AILimit),
		middleware.RequireRole(models.RolePatient),
		triageHandler.Analyze)

	// Consents
	consents := api.Group("/consents", jwt)
	consents.Post("/", consentHandler.Accept)
	consents.Get("/:type/status", consentHandler.Status)

	// Chat
	chat := api.Group("/chat", jwt, middleware.RateLimit(middleware.ChatLimit))
	chat.Post("/conversations", chatHandler.CreateConversation)
	chat.Get("/conversations/:id", chatHandler.GetConversation)
	chat.Post("/messages", chatHandler.SendMessage)

	// Notifications
	notifications := api.Group("/notifications", jwt)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Admin
	api.Get("/audit-logs", jwt,
		middleware.RequireRole(models.RoleAdmin),
		auditHandler.List)
}
