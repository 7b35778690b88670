package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Progress is the join record between a user and a challenge. Its existence
// means the user is participating; trips only ever accumulate.
type Progress struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_challenge" json:"userId"`
	ChallengeID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_challenge" json:"challengeId"`
	CurrentTrips int       `gorm:"not null;default:0" json:"currentTrips"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"isCompleted"`
	BetAmount    int       `gorm:"not null;default:0" json:"betAmount"`
	LastUpdated  time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`

	Challenge Challenge `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Progress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
