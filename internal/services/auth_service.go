package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

const loginRatePrefix = "login_rate:"

type AuthService struct {
	users           repository.UserRepository
	codec           *auth.Codec
	redisClient     *redis.Client
	loginRatePerMin int
}

// NewAuthService wires registration and login. redisClient may be nil, in
// which case login attempts are not rate limited.
func NewAuthService(users repository.UserRepository, codec *auth.Codec, redisClient *redis.Client, loginRatePerMin int) *AuthService {
	return &AuthService{
		users:           users,
		codec:           codec,
		redisClient:     redisClient,
		loginRatePerMin: loginRatePerMin,
	}
}

func (s *AuthService) Register(ctx context.Context, name string, birthDate time.Time, phone, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
		BirthDate:    birthDate,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns a signed session token. Unknown phone
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, phone, password string) (string, *models.User, error) {
	if err := s.checkLoginRate(ctx, phone); err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Sign(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) checkLoginRate(ctx context.Context, phone string) error {
	if s.redisClient == nil || s.loginRatePerMin <= 0 {
		return nil
	}
	key := loginRatePrefix + phone
	count, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		// rate limiting is best-effort, never blocks login on store trouble
		return nil
	}
	if count == 1 {
		s.redisClient.Expire(ctx, key, time.Minute)
	} else if count > int64(s.loginRatePerMin) {
		return ErrTooManyAttempts
	}
	return nil
}
