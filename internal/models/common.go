package models

import "time"

//nolint:gosec //file not handles sensitive data
const (
	MwBearerPrefix = "Bearer "

	MwUserIDKey = "userID"
	MwTokenKey  = "token"
)

const (
	SessionStatusActive = "active"
	SessionStatusUsed   = "used"
)

// RefreshSession is the server-side half of a selector.verifier refresh token.
// Only the verifier hash is stored.
type RefreshSession struct {
	ID           int64
	UserID       string
	Selector     string
	VerifierHash string
	Status       string
	UserAgent    string
	IPAddress    string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

type UserMetadata struct {
	UserAgent string `json:"userAgent"`
	IPAddress string `json:"ipAddress"`
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
