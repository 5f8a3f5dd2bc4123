package models

import "time"

// Profile holds the site owner's bio. One row is expected in practice but
// the store does not enforce it.
type Profile struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Avatar      string    `json:"avatar" gorm:"type:text"`
	Github      string    `json:"github" gorm:"type:text"`
	Linkedin    string    `json:"linkedin" gorm:"type:text"`
	Email       string    `json:"email" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
