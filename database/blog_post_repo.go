package database

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts newest-first with tags eagerly joined
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var blogPosts []*models.BlogPost
	err := r.db.Preload("Tags").Order("created_at DESC, id DESC").Find(&blogPosts).Error
	return blogPosts, err
}

// FindBySlug returns a blog post by its slug with tags joined, or nil when
// no row matches
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.Preload("Tags").Where("slug = ?", slug).First(&blogPost).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// Add inserts a new blog post and its tag links. A colliding slug is
// reported as a conflict on the slug field.
func (r *BlogPostRepo) Add(blogPost *models.BlogPost) error {
	err := r.db.Create(blogPost).Error
	if isUniqueViolation(err) {
		return errs.NewUniqueConstraintViolationError("blog post", "slug", err)
	}
	return err
}

// Update saves the post's own columns. The slug column is never rewritten;
// it was fixed at creation.
func (r *BlogPostRepo) Update(blogPost *models.BlogPost) error {
	return r.db.Omit("Slug", "CreatedAt", "Tags").Save(blogPost).Error
}

// ReplaceTags swaps the post's tag set for the given one
func (r *BlogPostRepo) ReplaceTags(blogPost *models.BlogPost, tags []models.Tag) error {
	return r.db.Model(blogPost).Association("Tags").Replace(tags)
}
