package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherlyhq/gatherly-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEventStore implements EventStore on PostgreSQL via GORM.
type GormEventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

func (s *GormEventStore) Create(ctx context.Context, event *models.Event) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *GormEventStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).Preload("Attendees").First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (s *GormEventStore) ListByMember(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).Preload("Attendees").
		Where("host_id = ? OR id IN (?)", userID,
			s.db.Model(&models.Attendee{}).Select("event_id").Where("user_id = ?", userID)).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *GormEventStore) ListPublic(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Preload("Attendees").Where("public = ?", true).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list public events: %w", err)
	}
	return events, nil
}

// AppendInvitedNumbers does a read-modify-write on the invite audit list
// under a row lock so concurrent dispatches cannot drop each other's entries.
func (s *GormEventStore) AppendInvitedNumbers(ctx context.Context, eventID uuid.UUID, numbers []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch event: %w", err)
		}

		updated := append([]string(event.InvitedNumbers), numbers...)
		if err := tx.Model(&event).Update("invited_numbers", datatypes.NewJSONSlice(updated)).Error; err != nil {
			return fmt.Errorf("failed to append invited numbers: %w", err)
		}
		return nil
	})
}

func (s *GormEventStore) GetAttendee(ctx context.Context, eventID, userID uuid.UUID) (*models.Attendee, error) {
	var attendee models.Attendee
	err := s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).First(&attendee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch attendee: %w", err)
	}
	return &attendee, nil
}

func (s *GormEventStore) AddAttendee(ctx context.Context, attendee *models.Attendee) error {
	if err := s.db.WithContext(ctx).Create(attendee).Error; err != nil {
		return fmt.Errorf("failed to add attendee: %w", err)
	}
	return nil
}

func (s *GormEventStore) SetRSVP(ctx context.Context, eventID, userID uuid.UUID, status models.RSVPStatus) error {
	result := s.db.WithContext(ctx).Model(&models.Attendee{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Update("rsvp", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update rsvp: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
