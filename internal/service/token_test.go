package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	token, jti, err := env.tokens.CreateAccessToken("user-1", time.Now())
	require.NoError(t, err)

	claims, err := env.tokens.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, jti, claims.JTI)
}

func TestAccessToken_Expired(t *testing.T) {
	env := newTestEnv(t)

	token, _, err := env.tokens.CreateAccessToken("user-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = env.tokens.ValidateAccessToken(context.Background(), token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessToken_WrongAlgorithm(t *testing.T) {
	env := newTestEnv(t)

	claims := &jwtClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = env.tokens.ValidateAccessToken(context.Background(), token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	env := newTestEnv(t)

	claims := &jwtClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = env.tokens.ValidateAccessToken(context.Background(), token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshToken_Validate(t *testing.T) {
	env := newTestEnv(t)

	token, selector, hash, err := env.tokens.CreateRefreshToken()
	require.NoError(t, err)

	sel, _, err := SplitRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, selector, sel)

	require.NoError(t, env.tokens.ValidateRefreshToken(token, hash))
	require.ErrorIs(t, env.tokens.ValidateRefreshToken(selector+".forged", hash), ErrTokenInvalid)
	require.ErrorIs(t, env.tokens.ValidateRefreshToken("garbage", hash), ErrTokenMalformed)
}
