package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrAuth          = errors.New("authentication error")
	ErrAuthorization = errors.New("authorization error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrRateLimit     = errors.New("rate limit exceeded")
	ErrInternal      = errors.New("internal error")
)

// Error is a business error carrying the HTTP status it should map to.
type Error struct {
	Err     error
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Err: ErrValidation, Status: fiber.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

func Auth(message string) *Error {
	return &Error{Err: ErrAuth, Status: fiber.StatusUnauthorized, Code: "AUTH_ERROR", Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Err: ErrAuthorization, Status: fiber.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

func NotFound(message string) *Error {
	return &Error{Err: ErrNotFound, Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func Conflict(message string) *Error {
	return &Error{Err: ErrConflict, Status: fiber.StatusConflict, Code: "CONFLICT", Message: message}
}

func Internal(err error) *Error {
	return &Error{Err: err, Status: fiber.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "Internal server error"}
}

// From returns err as an *Error, wrapping unknown errors as Internal so
// their detail never reaches the client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
