package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills with their category joined, in insertion order.
// The grouped list view depends on this ordering.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Preload("Category").Order("id").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill with its category joined, or nil when no row matches
func (r *SkillRepo) FindByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Preload("Category").First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByIDs returns the skills matching the given ids with categories joined
func (r *SkillRepo) FindByIDs(ids []uint) ([]models.Skill, error) {
	var skills []models.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := r.db.Preload("Category").Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

// Add inserts a new skill. A missing category is reported as a bad reference.
func (r *SkillRepo) Add(skill *models.Skill) error {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("id = ?", skill.CategoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewForeignKeyConstraintError("skill", "category", gorm.ErrRecordNotFound)
	}
	return r.db.Create(skill).Error
}
