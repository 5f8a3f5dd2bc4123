package database

import (
	"strings"

	"gorm.io/gorm"
)

type Database struct {
	categoryRepo *CategoryRepo
	tagRepo      *TagRepo
	profileRepo  *ProfileRepo
	skillRepo    *SkillRepo
	projectRepo  *ProjectRepo
	blogPostRepo *BlogPostRepo
	contactRepo  *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		categoryRepo: NewCategoryRepo(db),
		tagRepo:      NewTagRepo(db),
		profileRepo:  NewProfileRepo(db),
		skillRepo:    NewSkillRepo(db),
		projectRepo:  NewProjectRepo(db),
		blogPostRepo: NewBlogPostRepo(db),
		contactRepo:  NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// isUniqueViolation matches the unique-index failure text of both postgres
// and sqlite so repos can report the conflicting field instead of a bare
// driver error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
