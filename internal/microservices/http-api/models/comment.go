package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	AuthorID   string    `json:"author_id" gorm:"type:uuid;not null;index"`
	PostID     string    `json:"post_id" gorm:"type:uuid;not null;index"`
	ParentID   *string   `json:"parent_id,omitempty" gorm:"type:uuid;index"` // nil for top-level comments
	LikesCount int       `json:"likes_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Post   Post     `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
	Parent *Comment `json:"parent,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

func (Comment) TableName() string {
	return "comments"
}
