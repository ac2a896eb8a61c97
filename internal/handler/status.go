package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/internal/service"
)

// serviceError maps a domain error to its HTTP status and renders the
// envelope. Unrecognized errors become a generic 500 so store internals
// never reach the client.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrLinkNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))

	case errors.Is(err, service.ErrSelfDeletion):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))

	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrEmailDomainNotAllowed),
		errors.Is(err, service.ErrStudentDetailsRequired),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrIncorrectPassword):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error."))
	}
}

// currentUser returns the identity attached by the auth middleware.
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok
}

// parseID parses a numeric path parameter. Malformed ids are treated the
// same as ids that do not resolve.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
