package service

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or expired")
	// ErrEmergencyTokenNotFound is deliberately the same for unknown, revoked
	// and malformed tokens.
	ErrEmergencyTokenNotFound = errors.New("invalid or expired token")
)
