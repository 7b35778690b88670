package repository

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrProgressNotFound     = errors.New("progress not found")
	ErrPhoneTaken           = errors.New("phone already registered")
	ErrAlreadyParticipating = errors.New("already participating")
)
