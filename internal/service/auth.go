package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

const minPasswordLength = 8

type AuthService struct {
	storage storage.Storage
	tokens  *TokenService
	log     *zap.SugaredLogger
	now     func() time.Time
}

func NewAuthService(storage storage.Storage, tokens *TokenService, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		storage: storage,
		tokens:  tokens,
		log:     log,
		now:     time.Now,
	}
}

func (s *AuthService) Register(
	ctx context.Context,
	req models.RegisterRequest,
	meta models.UserMetadata,
) (*models.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}, strings.TrimSpace(req.FullName))
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Infow("User registered", "userID", user.ID)

	return s.issueTokens(ctx, user.ID, meta)
}

func (s *AuthService) Login(
	ctx context.Context,
	req models.LoginRequest,
	meta models.UserMetadata,
) (*models.AuthResponse, error) {
	user, err := s.storage.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID, meta)
}

// Refresh exchanges a refresh token for a new pair. The presented session is
// consumed. Presenting a consumed token again is treated as theft: every
// session of the user is revoked and the caller has to log in again.
func (s *AuthService) Refresh(
	ctx context.Context,
	refreshToken string,
	meta models.UserMetadata,
) (*models.RefreshResponse, error) {
	session, err := s.lookupSession(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionStatusActive {
		s.log.Warnw("Reused refresh token presented, revoking all sessions",
			"userID", session.UserID, "ip", meta.IPAddress)
		if err := s.storage.DeleteAllUserSessions(ctx, session.UserID); err != nil {
			return nil, fmt.Errorf("revoke sessions: %w", err)
		}
		return nil, ErrRefreshTokenInvalid
	}
	if !s.now().Before(session.ExpiresAt) {
		return nil, ErrRefreshTokenInvalid
	}

	newRefresh, selector, verifierHash, err := s.tokens.CreateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	now := s.now().UTC()
	next := models.RefreshSession{
		UserID:       session.UserID,
		Selector:     selector,
		VerifierHash: verifierHash,
		Status:       models.SessionStatusActive,
		UserAgent:    meta.UserAgent,
		IPAddress:    meta.IPAddress,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.tokens.RefreshTTL()),
	}
	if err := s.storage.RotateSession(ctx, session.Selector, next); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, fmt.Errorf("rotate session: %w", err)
	}

	access, _, err := s.tokens.CreateAccessToken(session.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &models.RefreshResponse{AccessToken: access, RefreshToken: newRefresh}, nil
}

// Logout revokes the refresh session and, when claims is non-nil, deny-lists
// the access token that made the call. An unknown refresh token is not an
// error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string, claims *AccessClaims) error {
	session, err := s.lookupSession(ctx, refreshToken)
	switch {
	case err == nil:
		if err := s.storage.DeleteSession(ctx, session.Selector); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	case errors.Is(err, ErrRefreshTokenInvalid):
	default:
		return err
	}

	if claims != nil {
		if err := s.tokens.InvalidateAccessToken(ctx, claims); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) lookupSession(ctx context.Context, refreshToken string) (*models.RefreshSession, error) {
	selector, _, err := SplitRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	session, err := s.storage.GetSessionBySelector(ctx, selector)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if err := s.tokens.ValidateRefreshToken(refreshToken, session.VerifierHash); err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	return session, nil
}

func (s *AuthService) issueTokens(ctx context.Context, userID string, meta models.UserMetadata) (*models.AuthResponse, error) {
	refresh, selector, verifierHash, err := s.tokens.CreateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	now := s.now().UTC()
	err = s.storage.CreateSession(ctx, models.RefreshSession{
		UserID:       userID,
		Selector:     selector,
		VerifierHash: verifierHash,
		Status:       models.SessionStatusActive,
		UserAgent:    meta.UserAgent,
		IPAddress:    meta.IPAddress,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.tokens.RefreshTTL()),
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	access, _, err := s.tokens.CreateAccessToken(userID, now)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &models.AuthResponse{UserID: userID, AccessToken: access, RefreshToken: refresh}, nil
}
