package database

import (
	"gorm.io/gorm"

	"portfolio-backend/models"
)

// RunMigrations creates or updates the schema for every entity, including
// the many-to-many join tables gorm derives from the model tags.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.BlogPost{},
		&models.Contact{},
	)
}
