package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rryowa/medcard/internal/models"
)

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, models.RegisterRequest{Email: "not-an-email", Password: "long enough"}, models.UserMetadata{})
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.auth.Register(ctx, models.RegisterRequest{Email: "a@b.io", Password: "short"}, models.UserMetadata{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "ana@example.com")

	_, err := env.auth.Register(context.Background(), models.RegisterRequest{
		Email:    "ANA@example.com",
		Password: "another password",
	}, models.UserMetadata{})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_IssuesUsableTokens(t *testing.T) {
	env := newTestEnv(t)
	resp := env.register(t, "ana@example.com")

	claims, err := env.tokens.ValidateAccessToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)

	profile, err := env.records.GetProfile(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", profile.FullName)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	reg := env.register(t, "ana@example.com")
	ctx := context.Background()

	resp, err := env.auth.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "correct horse"}, models.UserMetadata{})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, resp.UserID)
	assert.NotEqual(t, reg.RefreshToken, resp.RefreshToken)

	_, err = env.auth.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "wrong horse"}, models.UserMetadata{})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "correct horse"}, models.UserMetadata{})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RotatesAndConsumes(t *testing.T) {
	env := newTestEnv(t)
	reg := env.register(t, "ana@example.com")
	ctx := context.Background()

	pair, err := env.auth.Refresh(ctx, reg.RefreshToken, models.UserMetadata{})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, pair.RefreshToken)

	next, err := env.auth.Refresh(ctx, pair.RefreshToken, models.UserMetadata{})
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)
}

func TestRefresh_ReusedTokenRevokesAllSessions(t *testing.T) {
	env := newTestEnv(t)
	reg := env.register(t, "ana@example.com")
	ctx := context.Background()

	other, err := env.auth.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "correct horse"}, models.UserMetadata{})
	require.NoError(t, err)

	rotated, err := env.auth.Refresh(ctx, reg.RefreshToken, models.UserMetadata{})
	require.NoError(t, err)

	_, err = env.auth.Refresh(ctx, reg.RefreshToken, models.UserMetadata{IPAddress: "203.0.113.9"})
	require.ErrorIs(t, err, ErrRefreshTokenInvalid)

	_, err = env.auth.Refresh(ctx, rotated.RefreshToken, models.UserMetadata{})
	require.ErrorIs(t, err, ErrRefreshTokenInvalid)
	_, err = env.auth.Refresh(ctx, other.RefreshToken, models.UserMetadata{})
	require.ErrorIs(t, err, ErrRefreshTokenInvalid)

	// a fresh login still works
	_, err = env.auth.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "correct horse"}, models.UserMetadata{})
	require.NoError(t, err)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	env := newTestEnv(t)
	reg := env.register(t, "ana@example.com")
	ctx := context.Background()

	for _, tok := range []string{"", "no-dot", "a.b.c", reg.RefreshToken + "x"} {
		_, err := env.auth.Refresh(ctx, tok, models.UserMetadata{})
		require.ErrorIs(t, err, ErrRefreshTokenInvalid, tok)
	}
}

func TestRefresh_ConcurrentSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	reg := env.register(t, "ana@example.com")
	ctx := context.Background()

	const workers = 10
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err := env.auth.Refresh(ctx, reg.RefreshToken, models.UserMetadata{})
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	success := 0
	for err := range results {
		if err == nil {
			success++
			continue
		}
		require.ErrorIs(t, err, ErrRefreshTokenInvalid)
	}
	require.Equal(t, 1, success)
}

func TestLogout_RevokesSessionAndAccessToken(t *testing.T) {
	env := newTestEnv(t)
	reg := env.register(t, "ana@example.com")
	ctx := context.Background()

	claims, err := env.tokens.ValidateAccessToken(ctx, reg.AccessToken)
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, reg.RefreshToken, claims))

	_, err = env.tokens.ValidateAccessToken(ctx, reg.AccessToken)
	require.ErrorIs(t, err, ErrTokenRevoked)

	_, err = env.auth.Refresh(ctx, reg.RefreshToken, models.UserMetadata{})
	require.ErrorIs(t, err, ErrRefreshTokenInvalid)

	// a second logout with the same token is a no-op
	require.NoError(t, env.auth.Logout(ctx, reg.RefreshToken, nil))
}
