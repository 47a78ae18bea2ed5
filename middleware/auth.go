package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"campus_backend/auth"
	"campus_backend/models"
)

const userKey = "user"

// ValidateToken verifies the bearer token and stores the claims for
// downstream handlers. Requests without a valid token never reach a
// protected route.
func ValidateToken(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "User is not authorized or token is missing",
			})
		}
		user, err := auth.Parse(secret, strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "User is not authorized",
			})
		}
		c.Locals(userKey, user)
		return c.Next()
	}
}

// RequireRole rejects callers whose token does not carry the given role's
// ID claim.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.IDFor(role) == "" {
			log.Printf("Unauthorized access: caller is not authorized as %s", role)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "You are not authorized as " + role.String(),
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the verified claims, or nil on unauthenticated routes.
func CurrentUser(c *fiber.Ctx) *auth.ClaimUser {
	user, _ := c.Locals(userKey).(*auth.ClaimUser)
	return user
}
