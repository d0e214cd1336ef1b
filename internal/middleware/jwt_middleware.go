package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoeshop/internal/models"
	"shoeshop/internal/services"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token. A missing, malformed, badly signed or expired token yields
// 401; the validated subject and role are stored in the request locals.
func AuthRequired(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(LocalUsername, claims.Subject)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireRole is a Fiber middleware that rejects authenticated requests whose
// role does not match. It must run after AuthRequired; a wrong role yields
// 403, which is distinct from the 401 of a failed authentication.
func RequireRole(required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(models.Role)
		if !ok || role != required {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient permissions",
			})
		}
		return c.Next()
	}
}
