package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups skills under a display name (e.g. "Backend", "Frontend")
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Skills []Skill `json:"skills,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate derives the slug from the name when the caller did not supply
// one. An explicit slug is used verbatim.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}
