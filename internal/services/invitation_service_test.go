package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func contactUser(id uuid.UUID, names, numbers []string) *models.User {
	return &models.User{
		ID:             id,
		Email:          "host@example.com",
		Name:           "Host",
		ContactNames:   datatypes.NewJSONSlice(names),
		ContactNumbers: datatypes.NewJSONSlice(numbers),
	}
}

func TestSelectInvitees_ReturnsNumbersInSuppliedOrder(t *testing.T) {
	hostID := uuid.New()
	users := &fakeUserStore{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return contactUser(id, []string{"A", "B", "C"}, []string{"111", "222", "333"}), nil
		},
	}
	svc := NewInvitationService(users, &fakeEventStore{}, nil, "http://localhost:3000/invited-event")

	got, err := svc.SelectInvitees(context.Background(), hostID, []int{0, 2})
	if err != nil {
		t.Fatalf("SelectInvitees returned error: %v", err)
	}
	if len(got) != 2 || got[0] != "111" || got[1] != "333" {
		t.Fatalf("expected [111 333], got %v", got)
	}
}

func TestSelectInvitees_OutOfRangeIndexFailsWholeCall(t *testing.T) {
	users := &fakeUserStore{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return contactUser(id, []string{"A", "B"}, []string{"111", "222"}), nil
		},
	}
	svc := NewInvitationService(users, &fakeEventStore{}, nil, "")

	for _, idx := range []int{2, -1} {
		if _, err := svc.SelectInvitees(context.Background(), uuid.New(), []int{0, idx}); !errors.Is(err, ErrContactIndexOutOfRange) {
			t.Fatalf("index %d: expected ErrContactIndexOutOfRange, got %v", idx, err)
		}
	}
}

func TestSelectInvitees_NoStoredContacts(t *testing.T) {
	users := &fakeUserStore{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return contactUser(id, nil, nil), nil
		},
	}
	svc := NewInvitationService(users, &fakeEventStore{}, nil, "")

	if _, err := svc.SelectInvitees(context.Background(), uuid.New(), []int{0}); !errors.Is(err, ErrNoContacts) {
		t.Fatalf("expected ErrNoContacts, got %v", err)
	}
}

func TestSelectInvitees_UnknownHost(t *testing.T) {
	users := &fakeUserStore{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewInvitationService(users, &fakeEventStore{}, nil, "")

	if _, err := svc.SelectInvitees(context.Background(), uuid.New(), []int{0}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDispatchInvites_AppendsAndSendsLinkPerNumber(t *testing.T) {
	eventID := uuid.New()
	var appended []string
	events := &fakeEventStore{
		appendInvitedNumbersFn: func(_ context.Context, id uuid.UUID, numbers []string) error {
			if id != eventID {
				t.Fatalf("appended to wrong event: %s", id)
			}
			appended = append(appended, numbers...)
			return nil
		},
	}
	sms := newFakeSMS()
	svc := NewInvitationService(&fakeUserStore{}, events, sms, "http://localhost:3000/invited-event")

	if err := svc.DispatchInvites(context.Background(), eventID, []string{"111", "333"}); err != nil {
		t.Fatalf("DispatchInvites returned error: %v", err)
	}
	if len(appended) != 2 {
		t.Fatalf("expected 2 appended numbers, got %d", len(appended))
	}

	for i := 0; i < 2; i++ {
		select {
		case msg := <-sms.sent:
			if !strings.Contains(msg, eventID.String()) {
				t.Fatalf("invite message missing event link: %q", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for invite SMS")
		}
	}
}

func TestDispatchInvites_RepeatedDispatchDuplicatesEntries(t *testing.T) {
	// Duplicate invites are tolerated: the audit list records every dispatch.
	var appended []string
	events := &fakeEventStore{
		appendInvitedNumbersFn: func(_ context.Context, _ uuid.UUID, numbers []string) error {
			appended = append(appended, numbers...)
			return nil
		},
	}
	svc := NewInvitationService(&fakeUserStore{}, events, nil, "")

	eventID := uuid.New()
	for i := 0; i < 2; i++ {
		if err := svc.DispatchInvites(context.Background(), eventID, []string{"555"}); err != nil {
			t.Fatalf("dispatch %d returned error: %v", i, err)
		}
	}
	if len(appended) != 2 {
		t.Fatalf("expected the number appended twice, got %v", appended)
	}
}

func TestDispatchInvites_SMSFailureDoesNotFailDispatch(t *testing.T) {
	events := &fakeEventStore{
		appendInvitedNumbersFn: func(_ context.Context, _ uuid.UUID, _ []string) error {
			return nil
		},
	}
	sms := newFakeSMS()
	sms.err = errors.New("twilio unreachable")
	svc := NewInvitationService(&fakeUserStore{}, events, sms, "")

	if err := svc.DispatchInvites(context.Background(), uuid.New(), []string{"111"}); err != nil {
		t.Fatalf("dispatch should not surface SMS failures, got %v", err)
	}

	select {
	case <-sms.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for invite SMS attempt")
	}
}

func TestDispatchInvites_UnknownEvent(t *testing.T) {
	events := &fakeEventStore{
		appendInvitedNumbersFn: func(_ context.Context, _ uuid.UUID, _ []string) error {
			return store.ErrNotFound
		},
	}
	svc := NewInvitationService(&fakeUserStore{}, events, nil, "")

	if err := svc.DispatchInvites(context.Background(), uuid.New(), []string{"111"}); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
