package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects with technologies (and their categories)
// eagerly joined so list responses never fan out into per-row lookups
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Technologies.Category").Find(&projects).Error
	return projects, err
}

// FindBySlug returns a project by its slug with technologies joined, or nil
// when no row matches
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Technologies.Category").Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project. A colliding slug is reported as a conflict on
// the slug field.
func (r *ProjectRepo) Add(project *models.Project) error {
	err := r.db.Create(project).Error
	if isUniqueViolation(err) {
		return errs.NewUniqueConstraintViolationError("project", "slug", err)
	}
	return err
}
