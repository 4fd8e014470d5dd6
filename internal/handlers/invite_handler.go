package handlers

import (
	"errors"

	"github.com/gatherlyhq/gatherly-backend/internal/dto"
	"github.com/gatherlyhq/gatherly-backend/internal/services"
	"github.com/gatherlyhq/gatherly-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InviteHandler struct {
	invitationService *services.InvitationService
}

func NewInviteHandler(invitationService *services.InvitationService) *InviteHandler {
	return &InviteHandler{invitationService: invitationService}
}

// Dispatch resolves the caller's selected contact indices to phone numbers
// and dispatches invitations for the event.
func (h *InviteHandler) Dispatch(c *fiber.Ctx) error {
	hostID, err := session.GetUserID(c)
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

	var req dto.DispatchInvitesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if len(req.ContactIndices) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No contacts selected",
		})
	}

	numbers, err := h.invitationService.SelectInvitees(c.Context(), hostID, req.ContactIndices)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrNoContacts),
			errors.Is(err, services.ErrContactIndexOutOfRange):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to resolve contacts",
			})
		}
	}

	if err := h.invitationService.DispatchInvites(c.Context(), eventID, numbers); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to dispatch invites",
		})
	}

	return c.JSON(dto.DispatchInvitesResponse{
		EventID:        eventID,
		InvitedNumbers: numbers,
	})
}
