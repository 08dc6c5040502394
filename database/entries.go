package database

import (
	"errors"

	"gorm.io/gorm"

	"internhours/models"
)

// ErrNotFound is returned when no row matches both the id and the
// owner. An entry owned by someone else is indistinguishable from an
// entry that does not exist.
var ErrNotFound = errors.New("entry not found")

// Entries performs ownership-scoped operations on entry rows. Every
// read and write carries the owner in its WHERE clause; there is no
// way to reach another principal's rows through this type.
type Entries struct {
	db *gorm.DB
}

func NewEntries(db *gorm.DB) *Entries {
	return &Entries{db: db}
}

// ListByOwner returns all of the owner's entries, most recent date
// first. No entries is an empty slice, not an error.
func (r *Entries) ListByOwner(owner string) ([]models.Entry, error) {
	entries := []models.Entry{}
	if err := r.db.Where("created_by = ?", owner).Order("date desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByIDAndOwner returns the matching entry, or nil when no row
// matches. Absence is not an error at this layer.
func (r *Entries) GetByIDAndOwner(id uint, owner string) (*models.Entry, error) {
	var entry models.Entry
	err := r.db.Where("id = ? AND created_by = ?", id, owner).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create persists a new entry. The caller fills Date, the shift
// fields and CreatedBy; storage assigns ID and CreatedAt in place.
func (r *Entries) Create(entry *models.Entry) error {
	return r.db.Create(entry).Error
}

// UpdateByIDAndOwner replaces every mutable field on the matching
// row. The owner filter is part of the UPDATE statement itself, so
// the ownership check cannot race the mutation. nil shift values
// clear their columns.
func (r *Entries) UpdateByIDAndOwner(id uint, owner string, entry *models.Entry) error {
	result := r.db.Model(&models.Entry{}).
		Where("id = ? AND created_by = ?", id, owner).
		Updates(map[string]interface{}{
			"date":               entry.Date,
			"morning_time_in":    entry.MorningTimeIn,
			"morning_time_out":   entry.MorningTimeOut,
			"afternoon_time_in":  entry.AfternoonTimeIn,
			"afternoon_time_out": entry.AfternoonTimeOut,
			"evening_time_in":    entry.EveningTimeIn,
			"evening_time_out":   entry.EveningTimeOut,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByIDAndOwner removes the matching row for good.
func (r *Entries) DeleteByIDAndOwner(id uint, owner string) error {
	result := r.db.Where("id = ? AND created_by = ?", id, owner).Delete(&models.Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
