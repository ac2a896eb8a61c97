package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/pkg/token"
)

// UserLoader fetches the current user record for an authenticated request.
type UserLoader interface {
	GetByID(id uint) (*models.User, error)
}

// Protected authenticates the bearer token and re-fetches the user row on
// every request, so a deleted or altered account is reflected immediately
// instead of living on inside a stale token.
func Protected(tokens *token.Service, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Access denied. No token provided."))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format."))
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token expired."))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token."))
		}

		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token."))
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// AdminOnly gates a route to admin identities. Must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Access denied. No token provided."))
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied. Admin only."))
		}
		return c.Next()
	}
}
