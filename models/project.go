package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a portfolio entry. Technologies is a many-to-many link to Skill.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"type:text;not null"`
	Slug         string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Image        string    `json:"image" gorm:"type:text"`
	DemoURL      string    `json:"demo_url" gorm:"type:text"`
	GithubURL    string    `json:"github_url" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Technologies []Skill   `json:"technologies,omitempty" gorm:"many2many:project_technologies"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}
