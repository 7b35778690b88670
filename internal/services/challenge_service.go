package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

type ChallengeService struct {
	challenges repository.ChallengeRepository
	progresses repository.ProgressRepository
	now        func() time.Time
}

func NewChallengeService(challenges repository.ChallengeRepository, progresses repository.ProgressRepository) *ChallengeService {
	return &ChallengeService{
		challenges: challenges,
		progresses: progresses,
		now:        time.Now,
	}
}

type CreateChallengeInput struct {
	Title       string
	Type        models.ChallengeType
	TargetTrips int
	StartDate   time.Time
	EndDate     time.Time
}

func (s *ChallengeService) Create(ctx context.Context, in CreateChallengeInput) (*models.Challenge, error) {
	c := &models.Challenge{
		Title:       in.Title,
		Type:        in.Type,
		TargetTrips: in.TargetTrips,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    true,
	}
	if err := s.challenges.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ChallengeService) ListAll(ctx context.Context) ([]models.Challenge, error) {
	return s.challenges.ListAll(ctx)
}

// ListOpenForUser returns the challenges currently open for participation,
// each enriched with the caller's own progress. The completion flag is
// re-derived from the trip count on top of the stored value.
func (s *ChallengeService) ListOpenForUser(ctx context.Context, userID string) ([]models.OpenChallenge, error) {
	open, err := s.challenges.ListOpen(ctx, s.now())
	if err != nil {
		return nil, err
	}
	progresses, err := s.progresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byChallenge := make(map[string]*models.Progress, len(progresses))
	for i := range progresses {
		byChallenge[progresses[i].ChallengeID] = &progresses[i]
	}

	result := make([]models.OpenChallenge, 0, len(open))
	for _, c := range open {
		oc := models.OpenChallenge{Challenge: c}
		if p, ok := byChallenge[c.ID]; ok {
			oc.CurrentTrips = p.CurrentTrips
			oc.IsCompleted = p.IsCompleted || p.CurrentTrips >= c.TargetTrips
			oc.IsParticipating = true
			oc.BetAmount = p.BetAmount
		} else {
			oc.IsCompleted = oc.CurrentTrips >= c.TargetTrips
		}
		oc.Ratio = progressRatio(oc.CurrentTrips, c.TargetTrips)
		result = append(result, oc)
	}
	return result, nil
}

func (s *ChallengeService) SetActive(ctx context.Context, id string, active bool) (*models.Challenge, error) {
	return s.challenges.SetActive(ctx, id, active)
}

// Archive flips the active flag; archiving and restoring are the same
// mutation with different response text.
func (s *ChallengeService) Archive(ctx context.Context, id string, archived bool) (*models.Challenge, string, error) {
	c, err := s.challenges.SetActive(ctx, id, !archived)
	if err != nil {
		return nil, "", err
	}
	msg := "Challenge restored from archive"
	if archived {
		msg = "Challenge moved to archive"
	}
	return c, msg, nil
}

func (s *ChallengeService) ListArchived(ctx context.Context, f repository.ArchivedFilter) ([]models.Challenge, error) {
	return s.challenges.ListArchived(ctx, f)
}

type AutoArchiveResult struct {
	Message       string
	ArchivedCount int64
	Challenges    []models.ChallengeRef
}

// AutoArchive deactivates every still-active challenge whose end date has
// passed, in one bulk update. Running it again immediately archives nothing.
func (s *ChallengeService) AutoArchive(ctx context.Context) (*AutoArchiveResult, error) {
	now := s.now()
	expired, err := s.challenges.ListExpiredActive(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return &AutoArchiveResult{
			Message:       "No finished challenges to archive",
			ArchivedCount: 0,
		}, nil
	}

	count, err := s.challenges.DeactivateExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	refs := make([]models.ChallengeRef, 0, len(expired))
	for _, c := range expired {
		refs = append(refs, models.ChallengeRef{ID: c.ID, Title: c.Title})
	}
	return &AutoArchiveResult{
		Message:       fmt.Sprintf("Automatically archived %d challenges", count),
		ArchivedCount: count,
		Challenges:    refs,
	}, nil
}
