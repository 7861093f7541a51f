package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	AuthorID   string    `json:"author_id" gorm:"type:uuid;not null;index"`
	CategoryID *string   `json:"category_id,omitempty" gorm:"type:uuid;index"`
	LikesCount int       `json:"likes_count" gorm:"not null;default:0;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (Post) TableName() string {
	return "posts"
}
