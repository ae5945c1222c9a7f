package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
)

// RateLimitFamily is one route family's window and budget.
type RateLimitFamily struct {
	Max     int
	Window  time.Duration
	Message string
}

// Per-family limits. Exceeding any returns 429 with the fixed message.
var (
	LoginLimit    = RateLimitFamily{Max: 10, Window: 15 * time.Minute, Message: "Too many requests. Please try again later."}
	RegisterLimit = RateLimitFamily{Max: 5, Window: time.Hour, Message: "Too many requests. Please try again later."}
	AILimit       = RateLimitFamily{Max: 5, Window: time.Minute, Message: "AI rate limit exceeded. Please wait before retrying."}
	ChatLimit     = RateLimitFamily{Max: 30, Window: time.Minute, Message: "Too many requests. Please try again later."}
	BookingLimit  = RateLimitFamily{Max: 3, Window: time.Minute, Message: "Too many booking attempts. Please wait before retrying."}
	GlobalLimit   = RateLimitFamily{Max: 60, Window: time.Minute, Message: "Too many requests. Please try again later."}
)

func RateLimit(f RateLimitFamily) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               f.Max,
		Expiration:        f.Window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.Err(f.Message))
		},
	})
}
