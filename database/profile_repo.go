package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindAll returns all profile rows; in practice a single row is expected
func (r *ProfileRepo) FindAll() ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.Find(&profiles).Error
	return profiles, err
}

// FindByID returns a profile by its id, or nil when no row matches
func (r *ProfileRepo) FindByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update saves an existing profile
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
