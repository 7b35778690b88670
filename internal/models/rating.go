package models

import "time"

// RatingChallenge is the per-challenge breakdown inside a rating entry.
type RatingChallenge struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Type         ChallengeType `json:"type"`
	TargetTrips  int           `json:"targetTrips"`
	CurrentTrips int           `json:"currentTrips"`
	IsCompleted  bool          `json:"isCompleted"`
	BetAmount    int           `json:"betAmount"`
	Progress     int           `json:"progress"`
}

// RatingEntry is one row of the computed leaderboard.
type RatingEntry struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Phone               string            `json:"phone"`
	RegisteredAt        time.Time         `json:"registeredAt"`
	TotalTrips          int               `json:"totalTrips"`
	CompletedChallenges int               `json:"completedChallenges"`
	ActiveChallenges    int               `json:"activeChallenges"`
	AverageProgress     int               `json:"averageProgress"`
	TotalBetAmount      int               `json:"totalBetAmount"`
	Score               int               `json:"score"`
	Challenges          []RatingChallenge `json:"challenges"`
	Position            int               `json:"position"`
}
