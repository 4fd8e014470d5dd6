package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
)

type fakeProvider struct {
	names   []string
	numbers []string
	err     error
}

func (f *fakeProvider) ListConnections(_ context.Context, _ string) ([]string, []string, error) {
	return f.names, f.numbers, f.err
}

func TestImportContacts_ReplacesWholesale(t *testing.T) {
	userID := uuid.New()
	var gotNames, gotNumbers []string
	users := &fakeUserStore{
		replaceContactsFn: func(_ context.Context, id uuid.UUID, names, numbers []string) error {
			if id != userID {
				t.Fatalf("replaced contacts for wrong user: %s", id)
			}
			gotNames, gotNumbers = names, numbers
			return nil
		},
	}
	provider := &fakeProvider{
		names:   []string{"A", "B"},
		numbers: []string{"111", "222"},
	}
	svc := NewContactService(users, provider)

	count, err := svc.ImportContacts(context.Background(), userID, "tok")
	if err != nil {
		t.Fatalf("ImportContacts returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if !reflect.DeepEqual(gotNames, provider.names) || !reflect.DeepEqual(gotNumbers, provider.numbers) {
		t.Fatalf("stored contacts %v/%v do not match provider's", gotNames, gotNumbers)
	}
}

func TestImportContacts_ProviderFailure(t *testing.T) {
	svc := NewContactService(&fakeUserStore{}, &fakeProvider{err: errors.New("people api down")})

	if _, err := svc.ImportContacts(context.Background(), uuid.New(), "tok"); !errors.Is(err, ErrContactImportFailed) {
		t.Fatalf("expected ErrContactImportFailed, got %v", err)
	}
}

func TestImportContacts_MisalignedProviderData(t *testing.T) {
	svc := NewContactService(&fakeUserStore{}, &fakeProvider{
		names:   []string{"A", "B"},
		numbers: []string{"111"},
	})

	if _, err := svc.ImportContacts(context.Background(), uuid.New(), "tok"); err == nil {
		t.Fatal("expected error for misaligned name/number slices")
	}
}

func TestImportContacts_UnknownUser(t *testing.T) {
	users := &fakeUserStore{
		replaceContactsFn: func(_ context.Context, _ uuid.UUID, _, _ []string) error {
			return store.ErrNotFound
		},
	}
	svc := NewContactService(users, &fakeProvider{names: []string{"A"}, numbers: []string{"1"}})

	if _, err := svc.ImportContacts(context.Background(), uuid.New(), "tok"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestContactNames_UnknownUser(t *testing.T) {
	users := &fakeUserStore{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewContactService(users, &fakeProvider{})

	if _, err := svc.ContactNames(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
