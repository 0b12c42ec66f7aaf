package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage/memory"
	redisstorage "github.com/rryowa/medcard/internal/storage/redis"
	"github.com/rryowa/medcard/internal/util"
)

type testEnv struct {
	store   *memory.Storage
	tokens  *TokenService
	auth    *AuthService
	records *RecordService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zap.NewNop().Sugar()
	store := memory.NewStorage(log)
	tokens := NewTokenService(util.TokenConfig{
		JwtSecret:  "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, redisstorage.NewTokenStorage(rdb))

	return &testEnv{
		store:   store,
		tokens:  tokens,
		auth:    NewAuthService(store, tokens, log),
		records: NewRecordService(store, log),
	}
}

func (e *testEnv) register(t *testing.T, email string) *models.AuthResponse {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), models.RegisterRequest{
		Email:    email,
		Password: "correct horse",
		FullName: "Ana Souza",
	}, models.UserMetadata{IPAddress: "127.0.0.1"})
	require.NoError(t, err)
	return resp
}
