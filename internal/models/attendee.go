package models

import (
	"time"

	"github.com/google/uuid"
)

// RSVPStatus is an attendee's response state.
type RSVPStatus string

const (
	RSVPUnset        RSVPStatus = "unset"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
)

// Valid reports whether s is one of the settable responses. Unset is the
// registration default and cannot be set explicitly.
func (s RSVPStatus) Valid() bool {
	return s == RSVPAttending || s == RSVPNotAttending
}

// Attendee links a registered user to an event, keyed by (event, user).
// The composite unique index backs the one-entry-per-user invariant.
type Attendee struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendees_event_user" json:"event_id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendees_event_user" json:"user_id"`
	RSVP      RSVPStatus `gorm:"size:20;not null;default:'unset'" json:"rsvp"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
