package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

// FindBySlug returns a tag by its slug, or nil when no row matches
func (r *TagRepo) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("slug = ?", slug).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByIDs returns the tags matching the given ids, in no particular order.
// Unknown ids are simply absent from the result.
func (r *TagRepo) FindByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

// Add inserts a new tag. A colliding slug is reported as a conflict on the
// slug field.
func (r *TagRepo) Add(tag *models.Tag) error {
	err := r.db.Create(tag).Error
	if isUniqueViolation(err) {
		return errs.NewUniqueConstraintViolationError("tag", "slug", err)
	}
	return err
}
