package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/config"
	"github.com/medilinkhq/telehealth-backend/internal/handlers"
	"github.com/medilinkhq/telehealth-backend/internal/services"
)

func newTestApp() *fiber.App {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := fiber.New()
	Setup(app, cfg,
		handlers.NewAuthHandler(services.NewAuthService(nil, cfg, nil, nil)),
		handlers.NewHealthHandler(cfg),
		handlers.NewAppointmentHandler(services.NewAppointmentService(nil, nil, nil)),
		handlers.NewDoctorHandler(services.NewDoctorService(nil, nil)),
		handlers.NewTriageHandler(services.NewTriageService(nil, nil, nil, nil)),
		handlers.NewConsentHandler(services.NewConsentService(nil, nil)),
		handlers.NewChatHandler(services.NewChatService(nil)),
		handlers.NewNotificationHandler(services.NewNotificationService(nil)),
		handlers.NewAuditHandler(services.NewAuditService(nil)),
	)
	return app
}

// Account lifecycle routes must exist and sit behind the JWT gate.
func TestAccountRoutesRequireAuth(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/users/me"},
		{fiber.MethodDelete, "/api/users/me"},
		{fiber.MethodGet, "/api/users/me/export"},
		{fiber.MethodGet, "/api/audit-logs"},
		{fiber.MethodGet, "/api/notifications"},
		{fiber.MethodPost, "/api/appointments"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", tt.method, tt.path, resp.StatusCode)
		}
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/users/someone-else", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
