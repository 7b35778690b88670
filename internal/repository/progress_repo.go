package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teremets90/cashdrive-app/internal/models"
)

type ProgressRepository interface {
	// Create inserts a fresh join row; the composite unique index decides
	// the winner between concurrent joins.
	Create(ctx context.Context, p *models.Progress) error
	FindByUserAndChallenge(ctx context.Context, userID, challengeID string) (*models.Progress, error)
	ListByUser(ctx context.Context, userID string) ([]models.Progress, error)
	ListByChallengeIDs(ctx context.Context, challengeIDs []string) ([]models.Progress, error)
	// AddTrips upserts atomically: insert the row, or increment trips and
	// recompute completion in a single statement.
	AddTrips(ctx context.Context, userID, challengeID string, addTrips, target int) (*models.Progress, error)
}

type gormProgressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &gormProgressRepo{db: db}
}

func (r *gormProgressRepo) Create(ctx context.Context, p *models.Progress) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyParticipating
	}
	return err
}

func (r *gormProgressRepo) FindByUserAndChallenge(ctx context.Context, userID, challengeID string) (*models.Progress, error) {
	var p models.Progress
	err := r.db.WithContext(ctx).
		First(&p, "user_id = ? AND challenge_id = ?", userID, challengeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormProgressRepo) ListByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	var ps []models.Progress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&ps).Error
	return ps, err
}

func (r *gormProgressRepo) ListByChallengeIDs(ctx context.Context, challengeIDs []string) ([]models.Progress, error) {
	var ps []models.Progress
	err := r.db.WithContext(ctx).Where("challenge_id IN ?", challengeIDs).Find(&ps).Error
	return ps, err
}

func (r *gormProgressRepo) AddTrips(ctx context.Context, userID, challengeID string, addTrips, target int) (*models.Progress, error) {
	now := time.Now()
	p := &models.Progress{
		UserID:       userID,
		ChallengeID:  challengeID,
		CurrentTrips: addTrips,
		IsCompleted:  addTrips >= target,
		LastUpdated:  now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"current_trips": gorm.Expr("progresses.current_trips + EXCLUDED.current_trips"),
			"is_completed":  gorm.Expr("progresses.current_trips + EXCLUDED.current_trips >= ?", target),
			"last_updated":  now,
		}),
	}).Create(p).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUserAndChallenge(ctx, userID, challengeID)
}
