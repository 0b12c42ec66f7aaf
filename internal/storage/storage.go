package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rryowa/medcard/internal/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrConflict        = errors.New("already exists")
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Storage interface {
	UserRepository
	SessionRepository
	RecordRepository
	EmergencyTokenRepository
}

type UserRepository interface {
	// CreateUser stores the user together with an empty profile and health
	// record. A duplicate email yields ErrConflict.
	CreateUser(ctx context.Context, user models.User, fullName string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.RefreshSession) error
	GetSessionBySelector(ctx context.Context, selector string) (*models.RefreshSession, error)
	// RotateSession marks the active session identified by oldSelector as used
	// and stores next in the same step. It fails with ErrSessionNotFound if the
	// old session is no longer active, so only one rotation can win.
	RotateSession(ctx context.Context, oldSelector string, next models.RefreshSession) error
	DeleteSession(ctx context.Context, selector string) error
	// DeleteAllUserSessions revokes every refresh session of the user.
	DeleteAllUserSessions(ctx context.Context, userID string) error
}

type RecordRepository interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, userID string, profile models.Profile) error

	GetHealth(ctx context.Context, userID string) (*models.Health, error)
	SaveHealth(ctx context.Context, userID string, health models.Health) error

	ListAllergies(ctx context.Context, userID string) ([]models.Allergy, error)
	GetAllergy(ctx context.Context, userID, id string) (*models.Allergy, error)
	SaveAllergy(ctx context.Context, userID string, allergy models.Allergy) error
	DeleteAllergy(ctx context.Context, userID, id string) error

	ListMedications(ctx context.Context, userID string) ([]models.Medication, error)
	GetMedication(ctx context.Context, userID, id string) (*models.Medication, error)
	SaveMedication(ctx context.Context, userID string, medication models.Medication) error
	DeleteMedication(ctx context.Context, userID, id string) error

	ListEmergencyContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error)
	GetEmergencyContact(ctx context.Context, userID, id string) (*models.EmergencyContact, error)
	SaveEmergencyContact(ctx context.Context, userID string, contact models.EmergencyContact) error
	DeleteEmergencyContact(ctx context.Context, userID, id string) error

	ListAddresses(ctx context.Context, userID string) ([]models.Address, error)
	GetAddress(ctx context.Context, userID, id string) (*models.Address, error)
	// SaveAddress upserts the address; when it is primary every other address
	// of the user loses the flag.
	SaveAddress(ctx context.Context, userID string, address models.Address) error
	DeleteAddress(ctx context.Context, userID, id string) error
}

type EmergencyTokenRepository interface {
	GetEmergencyToken(ctx context.Context, userID string) (*models.EmergencyTokenRecord, error)
	// CreateEmergencyTokenIfAbsent stores token unless the user already has one,
	// and returns whichever record is stored afterwards.
	CreateEmergencyTokenIfAbsent(ctx context.Context, userID, token string) (*models.EmergencyTokenRecord, error)
	// ReplaceEmergencyToken overwrites the user's token in place. The previous
	// value stops matching as soon as the call returns.
	ReplaceEmergencyToken(ctx context.Context, userID, token string) (*models.EmergencyTokenRecord, error)
	FindUserByEmergencyToken(ctx context.Context, token string) (string, error)
}

// TokenStorage keeps revoked access tokens until they would expire anyway.
type TokenStorage interface {
	InvalidateToken(ctx context.Context, jti string, expiration time.Duration) error
	IsTokenInvalidated(ctx context.Context, jti string) (bool, error)
}

// RateLimiter counts hits per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
