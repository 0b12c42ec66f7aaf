package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

type SessionRepository struct {
	db storage.DBTX
}

func NewSessionRepository(db storage.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateSession(ctx context.Context, session models.RefreshSession) error {
	if session.Status == "" {
		session.Status = models.SessionStatusActive
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO sessions (user_id, selector, verifier_hash, status, client_ip, user_agent, expires_at, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(
		ctx,
		query,
		session.UserID,
		session.Selector,
		session.VerifierHash,
		session.Status,
		session.IPAddress,
		session.UserAgent,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetSessionBySelector(
	ctx context.Context,
	selector string,
) (*models.RefreshSession, error) {
	var session models.RefreshSession
	query := `SELECT id, user_id, selector, verifier_hash, status, client_ip, user_agent, expires_at, created_at FROM sessions WHERE selector = $1`
	err := r.db.QueryRowContext(ctx, query, selector).Scan(
		&session.ID,
		&session.UserID,
		&session.Selector,
		&session.VerifierHash,
		&session.Status,
		&session.IPAddress,
		&session.UserAgent,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session with selector %s not found: %w", selector, storage.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// MarkSessionAsUsed flips an active session to used. A session that is
// already used or missing yields ErrSessionNotFound.
func (r *SessionRepository) MarkSessionAsUsed(ctx context.Context, selector string) error {
	query := `UPDATE sessions SET status = 'used' WHERE selector = $1 AND status = 'active'`
	res, err := r.db.ExecContext(ctx, query, selector)
	if err != nil {
		return fmt.Errorf("failed to mark session as used: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark session as used: %w", err)
	}
	if n == 0 {
		return storage.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) RotateSession(ctx context.Context, oldSelector string, next models.RefreshSession) error {
	if err := r.MarkSessionAsUsed(ctx, oldSelector); err != nil {
		return err
	}
	return r.CreateSession(ctx, next)
}

func (r *SessionRepository) DeleteSession(ctx context.Context, selector string) error {
	query := `DELETE FROM sessions WHERE selector = $1`
	_, err := r.db.ExecContext(ctx, query, selector)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteAllUserSessions(ctx context.Context, userID string) error {
	query := `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}
