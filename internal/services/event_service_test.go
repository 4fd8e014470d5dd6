package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
)

func TestCreateEvent_SetsHostOnce(t *testing.T) {
	hostID := uuid.New()
	var created *models.Event
	events := &fakeEventStore{
		createFn: func(_ context.Context, e *models.Event) error {
			created = e
			return nil
		},
	}
	svc := NewEventService(events)

	event, err := svc.CreateEvent(context.Background(), hostID, "Housewarming", "bring snacks", "", true)
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}
	if created == nil {
		t.Fatal("event was not persisted")
	}
	if event.HostID != hostID {
		t.Fatalf("host = %s, want %s", event.HostID, hostID)
	}
	if !event.Public {
		t.Fatal("public flag not persisted")
	}
	if event.ID == uuid.Nil {
		t.Fatal("event id not assigned")
	}
}

func TestCreateEvent_RequiresTitle(t *testing.T) {
	svc := NewEventService(&fakeEventStore{})

	if _, err := svc.CreateEvent(context.Background(), uuid.New(), "", "", "", false); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestGetEvent_UnknownID(t *testing.T) {
	events := &fakeEventStore{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*models.Event, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewEventService(events)

	if _, err := svc.GetEvent(context.Background(), uuid.New()); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestListPublicEvents_PassesThrough(t *testing.T) {
	want := []models.Event{{ID: uuid.New(), Title: "Open mic", Public: true}}
	events := &fakeEventStore{
		listPublicFn: func(_ context.Context) ([]models.Event, error) {
			return want, nil
		},
	}
	svc := NewEventService(events)

	got, err := svc.ListPublicEvents(context.Background())
	if err != nil {
		t.Fatalf("ListPublicEvents returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != want[0].ID {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
