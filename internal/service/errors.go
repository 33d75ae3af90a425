package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrAccountAlreadyConnected is returned when onboarding is requested
	// for a profile that already has a connected account.
	ErrAccountAlreadyConnected = errors.New("payment account already connected")
)
