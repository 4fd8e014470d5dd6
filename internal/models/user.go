package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User holds the account record plus the imported contact book. ContactNames
// and ContactNumbers are index-aligned: position i in both slices refers to
// the same contact. Contact imports replace both slices wholesale.
type User struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email          string                      `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name           string                      `gorm:"size:255" json:"name"`
	Password       string                      `gorm:"not null;default:''" json:"-"`
	AuthProvider   string                      `gorm:"size:50;default:'google'" json:"-"`
	ContactNames   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"-"`
	ContactNumbers datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"-"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`
}
