package services

import (
	"context"
	"time"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// ProfileUpdate carries the optional self-edit fields; nil means unchanged.
type ProfileUpdate struct {
	Name      *string
	BirthDate *time.Time
	PhotoURL  *string
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.BirthDate != nil {
		fields["birth_date"] = *upd.BirthDate
	}
	if upd.PhotoURL != nil {
		fields["photo_url"] = *upd.PhotoURL
	}
	if len(fields) == 0 {
		return s.users.FindByID(ctx, id)
	}
	return s.users.UpdateFields(ctx, id, fields)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// AdminUpdate carries the fields an administrator may change; nil means unchanged.
type AdminUpdate struct {
	Name      *string
	Phone     *string
	IsAdmin   *bool
	IsBlocked *bool
}

func (s *UserService) AdminUpdateUser(ctx context.Context, id string, upd AdminUpdate) (*models.User, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.IsAdmin != nil {
		fields["is_admin"] = *upd.IsAdmin
	}
	if upd.IsBlocked != nil {
		fields["is_blocked"] = *upd.IsBlocked
	}
	if len(fields) == 0 {
		return s.users.FindByID(ctx, id)
	}
	return s.users.UpdateFields(ctx, id, fields)
}

// DeleteUser removes a user account. An admin can never delete themselves
// through this path; progress rows go with the user.
func (s *UserService) DeleteUser(ctx context.Context, actingUserID, targetID string) error {
	if actingUserID == targetID {
		return ErrSelfDelete
	}
	return s.users.Delete(ctx, targetID)
}
