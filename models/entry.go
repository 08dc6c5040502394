package models

import (
	"time"
)

// Entry is one owner's logged shift times for a single date. The six
// shift columns are nullable wall-clock values anchored to 1970-01-01
// UTC, so only hour, minute and second carry meaning. There is no
// soft delete: removing an entry is permanent.
type Entry struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	Date             time.Time  `gorm:"not null;type:date" json:"date"`
	MorningTimeIn    *time.Time `json:"morning_time_in"`
	MorningTimeOut   *time.Time `json:"morning_time_out"`
	AfternoonTimeIn  *time.Time `json:"afternoon_time_in"`
	AfternoonTimeOut *time.Time `json:"afternoon_time_out"`
	EveningTimeIn    *time.Time `json:"evening_time_in"`
	EveningTimeOut   *time.Time `json:"evening_time_out"`
	CreatedBy        string     `gorm:"not null;index;size:36" json:"created_by"`
}
