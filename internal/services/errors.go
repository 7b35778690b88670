package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrBetTooLow          = errors.New("minimum bet is 50")
	ErrBetNotMultiple     = errors.New("bet must be a multiple of 25")
	ErrChallengeInactive  = errors.New("challenge is not active")
	ErrChallengeNotOpen   = errors.New("challenge is not in its active period")
	ErrInvalidTrips       = errors.New("trips to add must be a positive number")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)
