package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
)

var (
	ErrNotRegistered = errors.New("user is not registered for this event")
	ErrInvalidRSVP   = errors.New("invalid rsvp status")
)

// RSVPService manages attendee registration and RSVP state. The per-entry
// state machine is unregistered -> registered(unset) -> registered(attending
// or not_attending); the second transition is repeatable in either direction.
type RSVPService struct {
	events store.EventStore
	users  store.UserStore
}

func NewRSVPService(events store.EventStore, users store.UserStore) *RSVPService {
	return &RSVPService{events: events, users: users}
}

// RegisterAttendance records that userID opened the invite and joined the
// event. Registration is keyed by (event, user): a second call for the same
// pair reports alreadyRegistered instead of adding a duplicate entry.
func (s *RSVPService) RegisterAttendance(ctx context.Context, eventID, userID uuid.UUID) (alreadyRegistered bool, err error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrEventNotFound
		}
		return false, err
	}

	if _, err := s.events.GetAttendee(ctx, eventID, userID); err == nil {
		return true, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	attendee := &models.Attendee{
		ID:      uuid.New(),
		EventID: eventID,
		UserID:  userID,
		RSVP:    models.RSVPUnset,
	}
	if err := s.events.AddAttendee(ctx, attendee); err != nil {
		return false, err
	}
	return false, nil
}

// SetRSVP updates the RSVP state of the caller's own attendee entry. The
// caller must have registered first; it can never touch another user's entry.
func (s *RSVPService) SetRSVP(ctx context.Context, eventID, callerID uuid.UUID, status models.RSVPStatus) error {
	if !status.Valid() {
		return ErrInvalidRSVP
	}

	if err := s.events.SetRSVP(ctx, eventID, callerID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotRegistered
		}
		return err
	}
	return nil
}

// ResolveAttendeeNames maps user ids to display names. Each id is looked up
// independently; ids that do not resolve are omitted rather than failing
// the batch.
func (s *RSVPService) ResolveAttendeeNames(ctx context.Context, userIDs []uuid.UUID) ([]string, error) {
	names := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				slog.Error("attendee name lookup failed", "action", "resolve_names", "user_id", id.String(), "error", err.Error())
			}
			continue
		}
		names = append(names, user.Name)
	}
	return names, nil
}
