package models

import (
	"time"

	"gorm.io/gorm"
)

// Category names are unique case-insensitively; the unique index on
// LOWER(name) is created in database.Migrate.
type Category struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

func (Category) TableName() string {
	return "categories"
}
