package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is a published article. Tags is a many-to-many link to Tag.
type BlogPost struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Image     string    `json:"image" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Tags      []Tag     `json:"tags,omitempty" gorm:"many2many:blog_post_tags"`
}

// BeforeCreate derives the slug from the title once; updates never touch it,
// even when the title changes.
func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	return nil
}
