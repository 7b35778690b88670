package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/teremets90/cashdrive-app/internal/models"
)

// ArchivedFilter narrows the archived listing. When both From and To are set,
// a challenge matches if either of its dates falls inside the range.
type ArchivedFilter struct {
	From   *time.Time
	To     *time.Time
	Search string
}

type ChallengeRepository interface {
	Create(ctx context.Context, c *models.Challenge) error
	FindByID(ctx context.Context, id string) (*models.Challenge, error)
	ListAll(ctx context.Context) ([]models.Challenge, error)
	ListOpen(ctx context.Context, now time.Time) ([]models.Challenge, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Challenge, error)
	ListArchived(ctx context.Context, f ArchivedFilter) ([]models.Challenge, error)
	ListExpiredActive(ctx context.Context, now time.Time) ([]models.Challenge, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type gormChallengeRepo struct {
	db *gorm.DB
}

func NewChallengeRepo(db *gorm.DB) ChallengeRepository {
	return &gormChallengeRepo{db: db}
}

func (r *gormChallengeRepo) Create(ctx context.Context, c *models.Challenge) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormChallengeRepo) FindByID(ctx context.Context, id string) (*models.Challenge, error) {
	var c models.Challenge
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChallengeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormChallengeRepo) ListAll(ctx context.Context) ([]models.Challenge, error) {
	var cs []models.Challenge
	err := r.db.WithContext(ctx).Order("start_date desc").Find(&cs).Error
	return cs, err
}

func (r *gormChallengeRepo) ListOpen(ctx context.Context, now time.Time) ([]models.Challenge, error) {
	var cs []models.Challenge
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date asc").
		Find(&cs).Error
	return cs, err
}

func (r *gormChallengeRepo) SetActive(ctx context.Context, id string, active bool) (*models.Challenge, error) {
	res := r.db.WithContext(ctx).Model(&models.Challenge{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrChallengeNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *gormChallengeRepo) ListArchived(ctx context.Context, f ArchivedFilter) ([]models.Challenge, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", false)

	switch {
	case f.From != nil && f.To != nil:
		// union of the two date fields falling in range, not an intersection
		q = q.Where("(start_date >= ? AND start_date <= ?) OR (end_date >= ? AND end_date <= ?)",
			*f.From, *f.To, *f.From, *f.To)
	case f.From != nil:
		q = q.Where("start_date >= ?", *f.From)
	case f.To != nil:
		q = q.Where("end_date <= ?", *f.To)
	}
	if f.Search != "" {
		q = q.Where("title ILIKE ?", "%"+f.Search+"%")
	}

	var cs []models.Challenge
	err := q.Order("end_date desc").Find(&cs).Error
	return cs, err
}

func (r *gormChallengeRepo) ListExpiredActive(ctx context.Context, now time.Time) ([]models.Challenge, error) {
	var cs []models.Challenge
	err := r.db.WithContext(ctx).
		Where("end_date < ? AND is_active = ?", now, true).
		Find(&cs).Error
	return cs, err
}

func (r *gormChallengeRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Challenge{}).
		Where("end_date < ? AND is_active = ?", now, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
