package models

import (
	"time"
)

// Preference holds a principal's required-hours target, one row per
// user.
type Preference struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	UserID        string    `gorm:"uniqueIndex;not null;size:36" json:"user_id"`
	RequiredHours float64   `gorm:"not null" json:"required_hours"`
}
