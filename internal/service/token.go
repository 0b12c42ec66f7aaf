package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rryowa/medcard/internal/storage"
	"github.com/rryowa/medcard/internal/util"
)

var (
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTokenMalformed       = errors.New("token is malformed")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrInvalidSigningMethod = errors.New("invalid signing method")
)

// AccessClaims is what the auth middleware needs from a verified access token.
type AccessClaims struct {
	UserID    string
	JTI       string
	ExpiresAt time.Time
}

type TokenService struct {
	jwtSecretKey []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
	tokenStorage storage.TokenStorage
}

func NewTokenService(cfg util.TokenConfig, tokenStorage storage.TokenStorage) *TokenService {
	return &TokenService{
		jwtSecretKey: cfg.SecretKey(),
		accessTTL:    cfg.AccessTTL,
		refreshTTL:   cfg.RefreshTTL,
		tokenStorage: tokenStorage,
	}
}

func (ts *TokenService) RefreshTTL() time.Duration { return ts.refreshTTL }

type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs an HS512 access token with a fresh JTI.
func (ts *TokenService) CreateAccessToken(userID string, now time.Time) (string, string, error) {
	jti := uuid.NewString()
	claims := &jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signedToken, err := token.SignedString(ts.jwtSecretKey)
	if err != nil {
		return "", "", fmt.Errorf("signed string: %w", err)
	}

	return signedToken, jti, nil
}

// CreateRefreshToken returns "selector.verifier". Only the verifier's sha256
// is persisted, the selector is the lookup key.
func (ts *TokenService) CreateRefreshToken() (token, selector, verifierHash string, err error) {
	rawToken := make([]byte, util.RawTokenLength)
	if _, err = rand.Read(rawToken); err != nil {
		return "", "", "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	selector = base64.RawURLEncoding.EncodeToString(rawToken[:16])
	verifier := base64.RawURLEncoding.EncodeToString(rawToken[16:])

	hashedVerifierBytes := sha256.Sum256([]byte(verifier))
	verifierHash = hex.EncodeToString(hashedVerifierBytes[:])

	token = selector + "." + verifier

	return token, selector, verifierHash, nil
}

// SplitRefreshToken returns the selector and verifier halves.
func SplitRefreshToken(token string) (selector, verifier string, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != util.TokenPartsExpected || parts[0] == "" || parts[1] == "" {
		return "", "", ErrTokenMalformed
	}
	return parts[0], parts[1], nil
}

func (ts *TokenService) ValidateRefreshToken(token, verifierHash string) error {
	_, verifier, err := SplitRefreshToken(token)
	if err != nil {
		return err
	}

	hashedVerifierBytes, err := hex.DecodeString(verifierHash)
	if err != nil {
		return fmt.Errorf("failed to decode stored hash: %w", err)
	}

	newHashBytes := sha256.Sum256([]byte(verifier))

	if subtle.ConstantTimeCompare(newHashBytes[:], hashedVerifierBytes) != 1 {
		return ErrTokenInvalid
	}

	return nil
}

func (ts *TokenService) ValidateAccessToken(ctx context.Context, token string) (*AccessClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithLeeway(util.JWTLeeWay),
		jwt.WithExpirationRequired(),
	}

	parsedToken, err := jwt.ParseWithClaims(
		token,
		&jwtClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
				return nil, ErrInvalidSigningMethod
			}
			return ts.jwtSecretKey, nil
		},
		opts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if parsedToken == nil || !parsedToken.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsedToken.Claims.(*jwtClaims)
	if !ok || claims.UserID == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrTokenInvalid
	}

	isInvalidated, err := ts.tokenStorage.IsTokenInvalidated(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("is token invalidated: %w", err)
	}
	if isInvalidated {
		return nil, ErrTokenRevoked
	}

	return &AccessClaims{
		UserID:    claims.UserID,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// InvalidateAccessToken deny-lists the token's JTI for the rest of its lifetime.
func (ts *TokenService) InvalidateAccessToken(ctx context.Context, claims *AccessClaims) error {
	expiration := time.Until(claims.ExpiresAt)

	if err := ts.tokenStorage.InvalidateToken(ctx, claims.JTI, expiration); err != nil {
		return fmt.Errorf("invalidate token: %w", err)
	}
	return nil
}
