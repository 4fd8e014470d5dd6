package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event is a hosted gathering. InvitedNumbers is the append-only audit trail
// of every phone number an invite was dispatched to, independent of whether
// that number ever registered. Entries are never removed or reordered.
type Event struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	HostID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"host_id"`
	Title          string                      `gorm:"size:255;not null" json:"title"`
	Description    string                      `gorm:"type:text" json:"description"`
	Cover          string                      `gorm:"size:500" json:"cover"`
	Public         bool                        `gorm:"default:false;index" json:"public"`
	InvitedNumbers datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"invited_numbers"`
	Attendees      []Attendee                  `gorm:"foreignKey:EventID" json:"attendees"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`
}
