package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

const (
	// MinBetAmount is the smallest stake accepted when joining a challenge.
	MinBetAmount = 50
	// BetStep is the increment every bet must be a multiple of.
	BetStep = 25
)

type ProgressService struct {
	challenges repository.ChallengeRepository
	progresses repository.ProgressRepository
	now        func() time.Time
}

func NewProgressService(challenges repository.ChallengeRepository, progresses repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		challenges: challenges,
		progresses: progresses,
		now:        time.Now,
	}
}

// Join enrolls the user into a challenge with a stake. The uniqueness of the
// (user, challenge) pair is enforced by the store's index, so two concurrent
// joins cannot both succeed.
func (s *ProgressService) Join(ctx context.Context, userID, challengeID string, betAmount int) (*models.Progress, string, error) {
	if betAmount < MinBetAmount {
		return nil, "", ErrBetTooLow
	}
	if betAmount%BetStep != 0 {
		return nil, "", ErrBetNotMultiple
	}

	challenge, err := s.challenges.FindByID(ctx, challengeID)
	if err != nil {
		return nil, "", err
	}
	if !challenge.IsActive {
		return nil, "", ErrChallengeInactive
	}
	now := s.now()
	if now.Before(challenge.StartDate) || now.After(challenge.EndDate) {
		return nil, "", ErrChallengeNotOpen
	}

	progress := &models.Progress{
		UserID:       userID,
		ChallengeID:  challengeID,
		CurrentTrips: 0,
		IsCompleted:  false,
		BetAmount:    betAmount,
	}
	if err := s.progresses.Create(ctx, progress); err != nil {
		return nil, "", err
	}

	msg := fmt.Sprintf("You joined the challenge with a bet of %d!", betAmount)
	return progress, msg, nil
}

// AddTrips accumulates trips for the user's progress on a challenge,
// creating the row on first report. Updates are accepted even after the
// challenge window closes.
func (s *ProgressService) AddTrips(ctx context.Context, userID, challengeID string, addTrips int) (*models.Progress, error) {
	if addTrips <= 0 {
		return nil, ErrInvalidTrips
	}
	challenge, err := s.challenges.FindByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	return s.progresses.AddTrips(ctx, userID, challengeID, addTrips, challenge.TargetTrips)
}
