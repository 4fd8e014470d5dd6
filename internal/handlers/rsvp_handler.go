package handlers

import (
	"errors"

	"github.com/gatherlyhq/gatherly-backend/internal/dto"
	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/gatherlyhq/gatherly-backend/internal/services"
	"github.com/gatherlyhq/gatherly-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RSVPHandler struct {
	rsvpService *services.RSVPService
}

func NewRSVPHandler(rsvpService *services.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService}
}

// Register records the caller as an attendee of the event. Registering
// twice is a reported no-op, not an error.
func (h *RSVPHandler) Register(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	already, err := h.rsvpService.RegisterAttendance(c.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to register",
		})
	}

	message := "Registered for event"
	if already {
		message = "Already registered"
	}
	return c.JSON(dto.RegisterResponse{
		Message:           message,
		UserID:            userID,
		AlreadyRegistered: already,
	})
}

// SetRSVP updates the caller's own RSVP entry on the event.
func (h *RSVPHandler) SetRSVP(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	var req dto.SetRSVPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	err = h.rsvpService.SetRSVP(c.Context(), eventID, userID, models.RSVPStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRSVP):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Status must be attending or not_attending",
			})
		case errors.Is(err, services.ErrNotRegistered):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Not registered for this event",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update RSVP",
			})
		}
	}

	return c.JSON(fiber.Map{"message": "RSVP updated successfully"})
}

// ResolveNames maps attendee user ids to display names, skipping ids that
// do not resolve.
func (h *RSVPHandler) ResolveNames(c *fiber.Ctx) error {
	var req dto.ResolveNamesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	names, err := h.rsvpService.ResolveAttendeeNames(c.Context(), req.UserIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resolve attendee names",
		})
	}

	return c.JSON(dto.ResolveNamesResponse{Names: names})
}
