package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contact messages from the database
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Find(&contacts).Error
	return contacts, err
}

// FindByID returns a contact message by its id, or nil when no row matches
func (r *ContactRepo) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Add inserts a new contact message into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Update saves an existing contact message (typically toggling is_read)
func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Omit("CreatedAt").Save(contact).Error
}

// Delete removes a contact message from the database by id
func (r *ContactRepo) Delete(id uint) error {
	return r.db.Delete(&models.Contact{}, id).Error
}
