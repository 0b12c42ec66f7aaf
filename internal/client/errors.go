package client

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired means the session could not be renewed. Local
	// credentials have been cleared and the user must log in again.
	ErrSessionExpired = errors.New("session expired")
	// ErrEmergencyTokenInvalid is returned by the public view for unknown or
	// revoked tokens.
	ErrEmergencyTokenInvalid = errors.New("invalid or expired emergency token")
)

// APIError is any non-2xx response outside the refresh protocol.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %s (status %d): %s", e.Code, e.Status, e.Message)
}
