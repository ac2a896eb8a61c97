package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/internal/service"
	"github.com/webway/campus-events-backend/pkg/utils"
)

type RegistrationLinkHandler struct {
	linkService *service.RegistrationLinkService
	validator   *utils.Validator
}

func NewRegistrationLinkHandler(linkService *service.RegistrationLinkService, validator *utils.Validator) *RegistrationLinkHandler {
	return &RegistrationLinkHandler{
		linkService: linkService,
		validator:   validator,
	}
}

func (h *RegistrationLinkHandler) ListLinks(c *fiber.Ctx) error {
	links, err := h.linkService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(models.SuccessResponse(links, ""))
}

func (h *RegistrationLinkHandler) UpsertLink(c *fiber.Ctx) error {
	var req models.RegistrationLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	link, created, err := h.linkService.Upsert(req)
	if err != nil {
		return serviceError(c, err)
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(link, "Registration link created successfully."))
	}
	return c.JSON(models.SuccessResponse(link, "Registration link updated successfully."))
}

func (h *RegistrationLinkHandler) DeleteLink(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Registration link not found."))
	}

	if err := h.linkService.Delete(id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Registration link deleted successfully."))
}
