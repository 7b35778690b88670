package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Phone        string    `gorm:"size:32;uniqueIndex;not null" json:"phone"`
	PasswordHash string    `gorm:"not null" json:"-"`
	BirthDate    time.Time `json:"birthDate"`
	PhotoURL     string    `gorm:"size:512" json:"photoUrl,omitempty"`
	IsAdmin      bool      `gorm:"default:false" json:"isAdmin"`
	IsBlocked    bool      `gorm:"default:false" json:"isBlocked"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registeredAt"`

	Progresses []Progress `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// PublicUser is the shape returned by registration and admin listings.
type PublicUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	IsAdmin      *bool     `json:"isAdmin,omitempty"`
	IsBlocked    *bool     `json:"isBlocked,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// ProfileUser is the shape returned by /api/auth/me and /api/profile.
type ProfileUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	BirthDate    time.Time `json:"birthDate"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	IsAdmin      *bool     `json:"isAdmin,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}
