package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantErr    error
		wantStatus int
		wantCode   string
	}{
		{"validation", Validation("bad input"), ErrValidation, fiber.StatusBadRequest, "VALIDATION_ERROR"},
		{"auth", Auth("bad credentials"), ErrAuth, fiber.StatusUnauthorized, "AUTH_ERROR"},
		{"forbidden", Forbidden("not allowed"), ErrAuthorization, fiber.StatusForbidden, "FORBIDDEN"},
		{"not found", NotFound("missing"), ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"conflict", Conflict("taken"), ErrConflict, fiber.StatusConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantErr)
			}
			if tt.err.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestFromPassesThroughAppError(t *testing.T) {
	orig := NotFound("appointment missing")

	got := From(orig)
	if got != orig {
		t.Errorf("From returned %v, want the original error", got)
	}

	wrapped := fmt.Errorf("while booking: %w", orig)
	if got := From(wrapped); got != orig {
		t.Errorf("From(wrapped) returned %v, want the original error", got)
	}
}

func TestFromWrapsUnknownAsInternal(t *testing.T) {
	cause := errors.New("driver: connection reset")

	got := From(cause)
	if got.Status != fiber.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", got.Status)
	}
	if got.Message != "Internal server error" {
		t.Errorf("Message = %q, leaks detail", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Error("wrapped error lost its cause")
	}
}
