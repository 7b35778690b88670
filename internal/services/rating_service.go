package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

type RatingService struct {
	users      repository.UserRepository
	challenges repository.ChallengeRepository
	progresses repository.ProgressRepository
	now        func() time.Time
}

func NewRatingService(users repository.UserRepository, challenges repository.ChallengeRepository, progresses repository.ProgressRepository) *RatingService {
	return &RatingService{
		users:      users,
		challenges: challenges,
		progresses: progresses,
		now:        time.Now,
	}
}

type RatingsResult struct {
	Ratings           []models.RatingEntry
	TotalParticipants int
	ActiveChallenges  int
	Message           string
}

// Compute builds the leaderboard fresh from the store. Every participant is
// scored against every open challenge, joined or not; having no open
// challenges is an empty result, not an error.
func (s *RatingService) Compute(ctx context.Context) (*RatingsResult, error) {
	open, err := s.challenges.ListOpen(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return &RatingsResult{
			Ratings: []models.RatingEntry{},
			Message: "No active challenges",
		}, nil
	}

	openIDs := make([]string, len(open))
	for i, c := range open {
		openIDs[i] = c.ID
	}
	progresses, err := s.progresses.ListByChallengeIDs(ctx, openIDs)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]map[string]*models.Progress)
	userIDs := make([]string, 0)
	for i := range progresses {
		p := &progresses[i]
		if byUser[p.UserID] == nil {
			byUser[p.UserID] = make(map[string]*models.Progress)
			userIDs = append(userIDs, p.UserID)
		}
		byUser[p.UserID][p.ChallengeID] = p
	}
	if len(userIDs) == 0 {
		return &RatingsResult{
			Ratings:          []models.RatingEntry{},
			ActiveChallenges: len(open),
		}, nil
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	ratings := make([]models.RatingEntry, 0, len(users))
	for _, u := range users {
		ratings = append(ratings, s.rateUser(&u, open, byUser[u.ID]))
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Score > ratings[j].Score
	})
	for i := range ratings {
		ratings[i].Position = i + 1
	}

	return &RatingsResult{
		Ratings:           ratings,
		TotalParticipants: len(ratings),
		ActiveChallenges:  len(open),
	}, nil
}

func (s *RatingService) rateUser(u *models.User, open []models.Challenge, progress map[string]*models.Progress) models.RatingEntry {
	var (
		totalTrips int
		completed  int
		totalRatio float64
		totalBet   int
		breakdown  = make([]models.RatingChallenge, 0, len(open))
	)

	for _, p := range progress {
		totalBet += p.BetAmount
	}

	for _, c := range open {
		var trips int
		var storedDone bool
		var bet int
		if p, ok := progress[c.ID]; ok {
			trips = p.CurrentTrips
			storedDone = p.IsCompleted
			bet = p.BetAmount
		}
		done := storedDone || trips >= c.TargetTrips

		totalTrips += trips
		if done {
			completed++
		}
		totalRatio += progressRatio(trips, c.TargetTrips)

		breakdown = append(breakdown, models.RatingChallenge{
			ID:           c.ID,
			Title:        c.Title,
			Type:         c.Type,
			TargetTrips:  c.TargetTrips,
			CurrentTrips: trips,
			IsCompleted:  done,
			BetAmount:    bet,
			Progress:     progressPercent(trips, c.TargetTrips),
		})
	}

	avg := 0.0
	if len(open) > 0 {
		avg = totalRatio / float64(len(open))
	}
	score := int(math.Round(float64(completed*100) + avg*50 + float64(totalTrips) + float64(totalBet)/10))

	return models.RatingEntry{
		ID:                  u.ID,
		Name:                u.Name,
		Phone:               u.Phone,
		RegisteredAt:        u.RegisteredAt,
		TotalTrips:          totalTrips,
		CompletedChallenges: completed,
		ActiveChallenges:    len(open),
		AverageProgress:     int(math.Round(avg * 100)),
		TotalBetAmount:      totalBet,
		Score:               score,
		Challenges:          breakdown,
	}
}

// progressRatio is the 0..1 completion ratio for one challenge. A zero
// target counts as fully complete so the division can never blow up.
func progressRatio(trips, target int) float64 {
	if target <= 0 {
		return 1
	}
	return math.Min(1, float64(trips)/float64(target))
}

func progressPercent(trips, target int) int {
	if target <= 0 {
		return 100
	}
	return int(math.Min(100, math.Round(float64(trips)/float64(target)*100)))
}
