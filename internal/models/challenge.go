package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeType string

const (
	ChallengeDaily   ChallengeType = "daily"
	ChallengeMonthly ChallengeType = "monthly"
)

type Challenge struct {
	ID          string        `gorm:"primaryKey;type:uuid" json:"id"`
	Type        ChallengeType `gorm:"size:16;not null" json:"type"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	TargetTrips int           `gorm:"not null" json:"targetTrips"`
	StartDate   time.Time     `gorm:"index;not null" json:"startDate"`
	EndDate     time.Time     `gorm:"index;not null" json:"endDate"`
	IsActive    bool          `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsOpen reports whether the challenge accepts participation at the given time.
func (c *Challenge) IsOpen(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// OpenChallenge is a challenge enriched with the requesting user's progress.
type OpenChallenge struct {
	Challenge
	CurrentTrips    int     `json:"currentTrips"`
	IsCompleted     bool    `json:"isCompleted"`
	Ratio           float64 `json:"ratio"`
	IsParticipating bool    `json:"isParticipating"`
	BetAmount       int     `json:"betAmount"`
}

// ChallengeRef identifies a challenge in auto-archive reports.
type ChallengeRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
