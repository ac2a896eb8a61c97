package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/internal/service"
	"github.com/webway/campus-events-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}
	return c.JSON(models.SuccessResponse(user, ""))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.userService.ChangePassword(user.ID, req); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password changed successfully."))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	updated, err := h.userService.UpdateProfile(user.ID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(updated, "Profile updated successfully."))
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(models.SuccessResponse(users, ""))
}

func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	targetID, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found."))
	}

	tempPassword, err := h.userService.ResetPassword(targetID)
	if err != nil {
		return serviceError(c, err)
	}

	// The plaintext appears in this response exactly once; only the hash
	// is stored.
	return c.JSON(models.SuccessResponse(fiber.Map{
		"temporary_password": tempPassword,
	}, "Password reset successfully."))
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	admin, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	targetID, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found."))
	}

	if err := h.userService.DeleteUser(admin.ID, targetID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "User deleted successfully."))
}
