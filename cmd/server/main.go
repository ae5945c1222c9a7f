package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/medilinkhq/telehealth-backend/internal/cache"
	"github.com/medilinkhq/telehealth-backend/internal/config"
	"github.com/medilinkhq/telehealth-backend/internal/database"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/handlers"
	"github.com/medilinkhq/telehealth-backend/internal/jobs"
	"github.com/medilinkhq/telehealth-backend/internal/logging"
	"github.com/medilinkhq/telehealth-backend/internal/middleware"
	"github.com/medilinkhq/telehealth-backend/internal/queue"
	"github.com/medilinkhq/telehealth-backend/internal/routes"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.SystemLogRetention, cleanupDone)

	appCache := cache.New()

	// Background queues: notification rows and outbound email are
	// decoupled from the request path.
	notificationService := services.NewNotificationService(database.DB)
	notificationQueue := queue.New("notifications", func(job services.NotificationJob) error {
		return notificationService.Create(job)
	})
	emailQueue := queue.New("emails", func(job services.EmailJob) error {
		// No SMTP provider is wired; delivery is logged.
		slog.Info("email dispatched", "to", job.To, "subject", job.Subject)
		return nil
	})
	notificationQueue.Start(20 * time.Second)
	emailQueue.Start(30 * time.Second)

	dispatcher := services.NewDispatcher(database.DB, notificationQueue, emailQueue)

	// Services
	auditService := services.NewAuditService(database.DB)
	authService := services.NewAuthService(database.DB, cfg, auditService, dispatcher)
	appointmentService := services.NewAppointmentService(database.DB, auditService, dispatcher)
	consentService := services.NewConsentService(database.DB, auditService)
	triageService := services.NewTriageService(database.DB, consentService, auditService, appCache)
	chatService := services.NewChatService(database.DB)
	doctorService := services.NewDoctorService(database.DB, appCache)

	// Background jobs
	noShowDone := make(chan struct{})
	jobs.StartNoShowSweep(appointmentService, noShowDone)
	auditCleanupDone := make(chan struct{})
	jobs.StartAuditCleanup(database.DB, cfg, auditCleanupDone)
	retentionDone := make(chan struct{})
	jobs.StartDataRetention(database.DB, cfg, retentionDone)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(cfg)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	triageHandler := handlers.NewTriageHandler(triageService)
	consentHandler := handlers.NewConsentHandler(consentService)
	chatHandler := handlers.NewChatHandler(chatService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler(cfg),
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg,
		authHandler, healthHandler, appointmentHandler, doctorHandler,
		triageHandler, consentHandler, chatHandler, notificationHandler,
		auditHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	close(noShowDone)
	close(auditCleanupDone)
	close(retentionDone)
	notificationQueue.Stop()
	emailQueue.Stop()
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// errorHandler keeps server error detail out of responses unless running
// in development.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if code >= 500 {
			slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
			if !cfg.IsDevelopment() {
				message = "Internal server error"
			}
		}

		return c.Status(code).JSON(dto.Err(message))
	}
}
