package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/internal/service"
	"github.com/webway/campus-events-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventService.List(c.Query("category"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found."))
	}

	event, err := h.eventService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, ""))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.Create(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully."))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found."))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.Update(id, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully."))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found."))
	}

	if err := h.eventService.Delete(id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully."))
}
