package database

import (
	"errors"

	"gorm.io/gorm"

	"internhours/models"
)

// Preferences stores each principal's required-hours target.
type Preferences struct {
	db *gorm.DB
}

func NewPreferences(db *gorm.DB) *Preferences {
	return &Preferences{db: db}
}

// GetByOwner returns the owner's preference row, or nil when none has
// been saved yet.
func (r *Preferences) GetByOwner(owner string) (*models.Preference, error) {
	var pref models.Preference
	err := r.db.Where("user_id = ?", owner).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or updates the owner's single preference row.
func (r *Preferences) Upsert(owner string, requiredHours float64) (*models.Preference, error) {
	var pref models.Preference
	err := r.db.Where("user_id = ?", owner).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.Preference{UserID: owner, RequiredHours: requiredHours}
		if err := r.db.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}

	pref.RequiredHours = requiredHours
	if err := r.db.Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}
