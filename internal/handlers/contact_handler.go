package handlers

import (
	"errors"

	"github.com/gatherlyhq/gatherly-backend/internal/dto"
	"github.com/gatherlyhq/gatherly-backend/internal/services"
	"github.com/gatherlyhq/gatherly-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Import replaces the caller's stored contact book with a fresh pull from
// the external address-book provider.
func (h *ContactHandler) Import(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ImportContactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.AccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Access token is required",
		})
	}

	count, err := h.contactService.ImportContacts(c.Context(), userID, req.AccessToken)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		if errors.Is(err, services.ErrContactImportFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to fetch contacts from provider",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update contacts",
		})
	}

	return c.JSON(dto.ImportContactsResponse{
		Message: "Contacts updated successfully",
		Count:   count,
	})
}

// List returns the caller's stored contact names for the invite picker.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	userID, err := session.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	names, err := h.contactService.ContactNames(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch contacts",
		})
	}

	return c.JSON(dto.ContactListResponse{Names: names})
}
