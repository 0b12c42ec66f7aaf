package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "medcard:revoked:"

type TokenStorage struct {
	client *redis.Client
}

func NewTokenStorage(client *redis.Client) *TokenStorage {
	return &TokenStorage{client: client}
}

// InvalidateToken deny-lists an access token id until it would expire.
func (s *TokenStorage) InvalidateToken(ctx context.Context, jti string, expiration time.Duration) error {
	if expiration <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "invalidated", expiration).Err()
}

func (s *TokenStorage) IsTokenInvalidated(ctx context.Context, jti string) (bool, error) {
	result, err := s.client.Get(ctx, revokedKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return result == "invalidated", nil
}
