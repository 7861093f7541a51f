package models

import (
	"time"

	"gorm.io/gorm"
)

// Like records that a user likes a post; one row per (user, post).
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_user_post"`
	PostID    string    `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_like_user_post;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Post Post `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}

func (Like) TableName() string {
	return "likes"
}

// CommentLike records that a user likes a comment; one row per (user, comment).
type CommentLike struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_like_user_comment"`
	CommentID string    `json:"comment_id" gorm:"type:uuid;not null;uniqueIndex:idx_comment_like_user_comment;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comment Comment `json:"comment,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;"`
}

func (cl *CommentLike) BeforeCreate(tx *gorm.DB) error {
	assignID(&cl.ID)
	return nil
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
