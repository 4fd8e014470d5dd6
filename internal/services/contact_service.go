package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherlyhq/gatherly-backend/internal/store"
	"github.com/google/uuid"
)

var ErrContactImportFailed = errors.New("contact import from provider failed")

// ContactProvider fetches an external address book as two index-aligned
// slices: display names and phone numbers.
type ContactProvider interface {
	ListConnections(ctx context.Context, accessToken string) (names []string, numbers []string, err error)
}

// ContactService imports and serves a user's contact book.
type ContactService struct {
	users    store.UserStore
	provider ContactProvider
}

func NewContactService(users store.UserStore, provider ContactProvider) *ContactService {
	return &ContactService{users: users, provider: provider}
}

// ImportContacts replaces the user's stored contact book wholesale with the
// provider's current list. There is no incremental merge.
func (s *ContactService) ImportContacts(ctx context.Context, userID uuid.UUID, accessToken string) (int, error) {
	names, numbers, err := s.provider.ListConnections(ctx, accessToken)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrContactImportFailed, err)
	}
	if len(names) != len(numbers) {
		return 0, fmt.Errorf("provider returned misaligned contacts: %d names, %d numbers", len(names), len(numbers))
	}

	if err := s.users.ReplaceContacts(ctx, userID, names, numbers); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	return len(names), nil
}

// ContactNames returns the stored contact display names for the picker UI.
func (s *ContactService) ContactNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return []string(user.ContactNames), nil
}
