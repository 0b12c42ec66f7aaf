package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

const (
	uniqueViolationCode       = "23505"
	invalidTextRepresentation = "22P02"
)

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	db *sql.DB
	*UserRepository
	*SessionRepository
	*RecordRepository
	*EmergencyTokenRepository
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{
		db:                       db,
		UserRepository:           NewUserRepository(db),
		SessionRepository:        NewSessionRepository(db),
		RecordRepository:         NewRecordRepository(db),
		EmergencyTokenRepository: NewEmergencyTokenRepository(db),
	}
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CreateUser inserts the user and seeds the empty profile and health rows
// in one transaction.
func (s *Storage) CreateUser(ctx context.Context, user models.User, fullName string) (*models.User, error) {
	var created *models.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		u, err := NewUserRepository(tx).CreateUser(ctx, user, fullName)
		if err != nil {
			return err
		}
		recordsTx := NewRecordRepository(tx)
		if err := recordsTx.SaveProfile(ctx, u.ID, models.Profile{FullName: fullName}); err != nil {
			return fmt.Errorf("failed to seed profile in tx: %w", err)
		}
		if err := recordsTx.SaveHealth(ctx, u.ID, models.Health{BloodType: models.BloodTypeUnknown}); err != nil {
			return fmt.Errorf("failed to seed health in tx: %w", err)
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RotateSession marks the old session as used and creates the next one.
// The update only matches an active row, so concurrent rotations of the same
// selector have a single winner.
func (s *Storage) RotateSession(ctx context.Context, oldSelector string, next models.RefreshSession) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		sessionRepoTx := NewSessionRepository(tx)

		if err := sessionRepoTx.MarkSessionAsUsed(ctx, oldSelector); err != nil {
			return err
		}
		if err := sessionRepoTx.CreateSession(ctx, next); err != nil {
			return fmt.Errorf("failed to create new session in tx: %w", err)
		}
		return nil
	})
}

func (s *Storage) SaveAddress(ctx context.Context, userID string, address models.Address) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		recordsTx := NewRecordRepository(tx)
		if address.IsPrimary {
			if err := recordsTx.clearPrimaryAddress(ctx, userID, address.ID); err != nil {
				return err
			}
		}
		return recordsTx.SaveAddress(ctx, userID, address)
	})
}

// sqlState returns the SQLSTATE code of a lib/pq or pgx error, or "".
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return sqlState(err) == uniqueViolationCode
}

// isMalformedID reports a record id the uuid column could not parse.
func isMalformedID(err error) bool {
	return sqlState(err) == invalidTextRepresentation
}
