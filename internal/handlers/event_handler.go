package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gatherlyhq/gatherly-backend/internal/config"
	"github.com/gatherlyhq/gatherly-backend/internal/dto"
	"github.com/gatherlyhq/gatherly-backend/internal/services"
	"github.com/gatherlyhq/gatherly-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventService *services.EventService
	cfg          *config.Config
}

func NewEventHandler(eventService *services.EventService, cfg *config.Config) *EventHandler {
	return &EventHandler{eventService: eventService, cfg: cfg}
}

// Create makes a new event hosted by the caller. Accepts multipart form
// fields plus an optional "cover" image part.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	hostID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	cover := ""
	if file, err := c.FormFile("cover"); err == nil {
		cover = filepath.Join(h.cfg.UploadDir, uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveFile(file, cover); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to save cover image",
			})
		}
	}

	event, err := h.eventService.CreateEvent(c.Context(), hostID, req.Title, req.Description, cover, req.Public)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	event, err := h.eventService.GetEvent(c.Context(), eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch event",
		})
	}

	return c.JSON(event)
}

// Mine lists events where the caller is host or registered attendee.
func (h *EventHandler) Mine(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	events, err := h.eventService.ListUserEvents(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fmt.Sprintf("Failed to fetch events: %v", err),
		})
	}

	return c.JSON(events)
}

func (h *EventHandler) Public(c *fiber.Ctx) error {
	events, err := h.eventService.ListPublicEvents(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch public events",
		})
	}

	return c.JSON(events)
}
