package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrNoContacts             = errors.New("no contact list stored for user")
	ErrContactIndexOutOfRange = errors.New("contact index out of range")
)

// InvitationService resolves a host's contact selection and dispatches
// invitations for an event.
type InvitationService struct {
	users    store.UserStore
	events   store.EventStore
	sms      SMSSender
	linkBase string
}

func NewInvitationService(users store.UserStore, events store.EventStore, sms SMSSender, linkBase string) *InvitationService {
	return &InvitationService{users: users, events: events, sms: sms, linkBase: linkBase}
}

// SelectInvitees maps indices into the host's stored contact list to phone
// numbers, in the order supplied. Any out-of-range index fails the whole
// call rather than being skipped.
func (s *InvitationService) SelectInvitees(ctx context.Context, hostID uuid.UUID, indices []int) ([]string, error) {
	user, err := s.users.GetByID(ctx, hostID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	numbers := []string(user.ContactNumbers)
	if len(numbers) == 0 {
		return nil, ErrNoContacts
	}
	if len(user.ContactNames) != len(numbers) {
		return nil, fmt.Errorf("contact list misaligned: %d names, %d numbers", len(user.ContactNames), len(numbers))
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(numbers) {
			return nil, fmt.Errorf("%w: %d", ErrContactIndexOutOfRange, idx)
		}
		selected = append(selected, numbers[idx])
	}

	return selected, nil
}

// DispatchInvites appends numbers to the event's invite audit list, then
// hands each number to the SMS sender with the invite link. Delivery is
// fire-and-forget: failures are logged and never roll back the persisted
// list. Repeated dispatches of the same number append duplicate entries.
func (s *InvitationService) DispatchInvites(ctx context.Context, eventID uuid.UUID, numbers []string) error {
	if len(numbers) == 0 {
		return errors.New("no invitees selected")
	}

	if err := s.events.AppendInvitedNumbers(ctx, eventID, numbers); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if s.sms != nil {
		go s.sendInvites(eventID, numbers)
	}

	return nil
}

func (s *InvitationService) sendInvites(eventID uuid.UUID, numbers []string) {
	// Detached from the request: dispatch already committed.
	ctx := context.Background()
	link := fmt.Sprintf("%s/%s", s.linkBase, eventID)
	body := fmt.Sprintf("You're invited! %s", link)

	for _, number := range numbers {
		if err := s.sms.Send(ctx, number, body); err != nil {
			slog.Error("invite sms failed", "action", "dispatch_invites", "event_id", eventID.String(), "error", err.Error())
		}
	}
}
