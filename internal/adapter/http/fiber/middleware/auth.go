package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

func AuthRequired(service ports.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization header format"})
		}

		token := parts[1]
		user, err := service.ValidateToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)
		c.Locals("user", user)
		c.Locals("token", token)

		return c.Next()
	}
}

// AdminOnly must run after AuthRequired.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(domain.UserRole)
		if !ok || role != domain.UserRoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
		}
		return c.Next()
	}
}

// UserFromContext extracts the authenticated user set by AuthRequired.
func UserFromContext(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals("user").(*domain.User)
	return user
}
