package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/repository"
	"github.com/teremets90/cashdrive-app/internal/services"
	"github.com/teremets90/cashdrive-app/internal/storage"
)

type Handler struct {
	authSvc      *services.AuthService
	userSvc      *services.UserService
	challengeSvc *services.ChallengeService
	progressSvc  *services.ProgressService
	ratingSvc    *services.RatingService
	blobs        storage.BlobStore
	codec        *auth.Codec
	validate     *validator.Validate
	log          *zap.Logger
}

func New(
	authSvc *services.AuthService,
	userSvc *services.UserService,
	challengeSvc *services.ChallengeService,
	progressSvc *services.ProgressService,
	ratingSvc *services.RatingService,
	blobs storage.BlobStore,
	codec *auth.Codec,
	log *zap.Logger,
) *Handler {
	return &Handler{
		authSvc:      authSvc,
		userSvc:      userSvc,
		challengeSvc: challengeSvc,
		progressSvc:  progressSvc,
		ratingSvc:    ratingSvc,
		blobs:        blobs,
		codec:        codec,
		validate:     newValidator(),
		log:          log,
	}
}

// fail maps domain errors onto HTTP statuses; anything unrecognized is a
// generic 500 with the detail kept server-side.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrChallengeNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrProgressNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrPhoneTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "user already exists"})
	case errors.Is(err, repository.ErrAlreadyParticipating),
		errors.Is(err, services.ErrBetTooLow),
		errors.Is(err, services.ErrBetNotMultiple),
		errors.Is(err, services.ErrChallengeInactive),
		errors.Is(err, services.ErrChallengeNotOpen),
		errors.Is(err, services.ErrInvalidTrips),
		errors.Is(err, services.ErrSelfDelete):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrTooManyAttempts):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error("request failed", zap.Error(err), zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
