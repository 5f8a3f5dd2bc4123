package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories from the database
func (r *CategoryRepo) FindAll() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

// FindBySlug returns a category by its slug, or nil when no row matches
func (r *CategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category. A colliding slug is reported as a conflict on
// the slug field.
func (r *CategoryRepo) Add(category *models.Category) error {
	err := r.db.Create(category).Error
	if isUniqueViolation(err) {
		return errs.NewUniqueConstraintViolationError("category", "slug", err)
	}
	return err
}

// Delete removes a category; its skills go with it through the cascade.
func (r *CategoryRepo) Delete(id uint) error {
	return r.db.Select("Skills").Delete(&models.Category{ID: id}).Error
}
