package handlers

import (
	"strings"

	applog "doacoesonline/internal/log"
	"doacoesonline/internal/token"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the Authorization bearer token and stores the parsed
// claims in Locals. Missing header is 401; a bad or expired token is 403.
func RequireAuth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		c.Locals("claims", claims)
		return c.Next()
	}
}

// RequireType restricts a route to one account type. Runs after RequireAuth.
func RequireType(userType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := CurrentClaims(c)
		if claims == nil || claims.UserType != userType {
			applog.Security(c, "access.denied.type", map[string]any{"want": userType})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not allowed for this account type"})
		}
		return c.Next()
	}
}

func CurrentClaims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals("claims").(*token.Claims)
	return claims
}
