package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "My First Post", "my-first-post"},
		{"already a slug", "my-first-post", "my-first-post"},
		{"punctuation collapses", "Go, Gophers & You!", "go-gophers-you"},
		{"leading and trailing junk", "  --Hello World--  ", "hello-world"},
		{"digits kept", "Top 10 Tips for 2024", "top-10-tips-for-2024"},
		{"consecutive separators", "a___b...c", "a-b-c"},
		{"uppercase lowered", "REST API Design", "rest-api-design"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&Category{}, &Tag{}, &Skill{}, &Project{}, &BlogPost{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestBlogPostSlugDerivedOnCreate(t *testing.T) {
	db := setupTestDB(t)

	post := BlogPost{Title: "Hello, World!", Content: "body"}
	assert.NoError(t, db.Create(&post).Error)
	assert.Equal(t, "hello-world", post.Slug)
}

func TestBlogPostExplicitSlugKeptVerbatim(t *testing.T) {
	db := setupTestDB(t)

	post := BlogPost{Title: "Hello, World!", Content: "body", Slug: "custom-slug"}
	assert.NoError(t, db.Create(&post).Error)
	assert.Equal(t, "custom-slug", post.Slug)
}

func TestCategorySlugDerivedOnCreate(t *testing.T) {
	db := setupTestDB(t)

	category := Category{Name: "Machine Learning"}
	assert.NoError(t, db.Create(&category).Error)
	assert.Equal(t, "machine-learning", category.Slug)
}

func TestProjectSlugDerivedOnCreate(t *testing.T) {
	db := setupTestDB(t)

	project := Project{Title: "Portfolio Site v2", Description: "desc"}
	assert.NoError(t, db.Create(&project).Error)
	assert.Equal(t, "portfolio-site-v2", project.Slug)
}
