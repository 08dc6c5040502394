package models

import (
	"time"
)

// User is an authenticated principal. The ID is an opaque UUID string
// and is what entries reference through their created_by column.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"uniqueIndex;not null;size:200" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Entries      []Entry   `gorm:"foreignKey:CreatedBy" json:"entries,omitempty"`
}
