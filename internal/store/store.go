package store

import (
	"context"
	"errors"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// UserStore is the persistence boundary for user accounts and their
// imported contact books.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ReplaceContacts overwrites both contact slices wholesale. Callers must
	// pass slices of equal length; index i refers to the same contact in both.
	ReplaceContacts(ctx context.Context, userID uuid.UUID, names, numbers []string) error
}

// EventStore is the persistence boundary for events and their attendee sets.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// ListByMember returns events where userID is the host or a registered
	// attendee, in the store's natural order.
	ListByMember(ctx context.Context, userID uuid.UUID) ([]models.Event, error)
	ListPublic(ctx context.Context) ([]models.Event, error)
	// AppendInvitedNumbers appends numbers to the event's invite audit list.
	// Existing entries are never removed or reordered; duplicates are kept.
	AppendInvitedNumbers(ctx context.Context, eventID uuid.UUID, numbers []string) error
	GetAttendee(ctx context.Context, eventID, userID uuid.UUID) (*models.Attendee, error)
	AddAttendee(ctx context.Context, attendee *models.Attendee) error
	// SetRSVP updates the RSVP state of the attendee entry keyed by
	// (eventID, userID). ErrNotFound if no such entry exists.
	SetRSVP(ctx context.Context, eventID, userID uuid.UUID, status models.RSVPStatus) error
}
