package dto

import "github.com/google/uuid"

// CreateEventRequest is parsed from multipart form fields; the optional
// cover image travels as the "cover" file part.
type CreateEventRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Public      bool   `json:"public" form:"public"`
}

// DispatchInvitesRequest selects contacts by index into the caller's stored
// contact list, in the order supplied.
type DispatchInvitesRequest struct {
	ContactIndices []int `json:"contact_indices"`
}

type DispatchInvitesResponse struct {
	EventID        uuid.UUID `json:"event_id"`
	InvitedNumbers []string  `json:"invited_numbers"`
}

type RegisterResponse struct {
	Message           string    `json:"message"`
	UserID            uuid.UUID `json:"user_id"`
	AlreadyRegistered bool      `json:"already_registered"`
}

type SetRSVPRequest struct {
	Status string `json:"status"`
}

type ResolveNamesRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

type ResolveNamesResponse struct {
	Names []string `json:"names"`
}
