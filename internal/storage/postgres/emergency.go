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

type EmergencyTokenRepository struct {
	db storage.DBTX
}

func NewEmergencyTokenRepository(db storage.DBTX) *EmergencyTokenRepository {
	return &EmergencyTokenRepository{db: db}
}

func (r *EmergencyTokenRepository) GetEmergencyToken(ctx context.Context, userID string) (*models.EmergencyTokenRecord, error) {
	var rec models.EmergencyTokenRecord
	query := `SELECT user_id, token, active, created_at FROM emergency_tokens WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&rec.UserID, &rec.Token, &rec.Active, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get emergency token: %w", err)
	}
	return &rec, nil
}

func (r *EmergencyTokenRepository) CreateEmergencyTokenIfAbsent(
	ctx context.Context,
	userID, token string,
) (*models.EmergencyTokenRecord, error) {
	query := `INSERT INTO emergency_tokens (user_id, token, active, created_at) VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, userID, token, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrConflict
		}
		return nil, fmt.Errorf("create emergency token: %w", err)
	}
	return r.GetEmergencyToken(ctx, userID)
}

func (r *EmergencyTokenRepository) ReplaceEmergencyToken(
	ctx context.Context,
	userID, token string,
) (*models.EmergencyTokenRecord, error) {
	rec := models.EmergencyTokenRecord{UserID: userID, Token: token, Active: true, CreatedAt: time.Now().UTC()}
	query := `INSERT INTO emergency_tokens (user_id, token, active, created_at) VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, active = TRUE, created_at = EXCLUDED.created_at`
	if _, err := r.db.ExecContext(ctx, query, userID, token, rec.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrConflict
		}
		return nil, fmt.Errorf("replace emergency token: %w", err)
	}
	return &rec, nil
}

func (r *EmergencyTokenRepository) FindUserByEmergencyToken(ctx context.Context, token string) (string, error) {
	var userID string
	query := `SELECT user_id FROM emergency_tokens WHERE token = $1 AND active`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("find emergency token: %w", err)
	}
	return userID, nil
}
