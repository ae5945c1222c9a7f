package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medilinkhq/telehealth-backend/internal/dto"
	"github.com/medilinkhq/telehealth-backend/internal/models"
)

// RequireRole gates a route to the given roles. It must be mounted
// behind JWTProtected. Missing claims map to 401, a role outside the
// allowed set to 403.
func RequireRole(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role := UserRole(c)
		if !role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("Unauthorized"))
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("Insufficient permissions"))
		}
		return c.Next()
	}
}
