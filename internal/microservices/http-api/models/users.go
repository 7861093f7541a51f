package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	assignID(&user.ID)
	return
}

func (User) TableName() string {
	return "users"
}

// assignID generates a new UUID if the ID is not already set.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
