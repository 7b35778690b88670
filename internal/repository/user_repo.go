package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/teremets90/cashdrive-app/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

type gormUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &gormUserRepo{db: db}
}

func (r *gormUserRepo) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrPhoneTaken
	}
	return err
}

func (r *gormUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByIDs returns the named users ordered by name, for stable rating output.
func (r *gormUserRepo) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name asc").
		Find(&users).Error
	return users, err
}

func (r *gormUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneTaken
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *gormUserRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("registered_at desc").Find(&users).Error
	return users, err
}

// Delete removes the user; progress rows go with it via the FK cascade.
func (r *gormUserRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
