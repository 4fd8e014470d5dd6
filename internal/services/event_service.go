package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
)

var ErrEventNotFound = errors.New("event not found")

type EventService struct {
	events store.EventStore
}

func NewEventService(events store.EventStore) *EventService {
	return &EventService{events: events}
}

// CreateEvent creates an event owned by hostID. The host is set once here
// and never reassigned.
func (s *EventService) CreateEvent(ctx context.Context, hostID uuid.UUID, title, description, cover string, public bool) (*models.Event, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}

	event := &models.Event{
		ID:          uuid.New(),
		HostID:      hostID,
		Title:       title,
		Description: description,
		Cover:       cover,
		Public:      public,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// ListUserEvents returns every event where userID is the host or a
// registered attendee, in the store's natural order.
func (s *EventService) ListUserEvents(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	return s.events.ListByMember(ctx, userID)
}

func (s *EventService) ListPublicEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.ListPublic(ctx)
}
