package client

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	refreshKey     = "refresh"
	refreshTimeout = 30 * time.Second
)

// TokenPair is what a refresh exchange returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// ExchangeFunc trades a refresh token for a new pair.
type ExchangeFunc func(ctx context.Context, refreshToken string) (TokenPair, error)

// Coordinator makes sure concurrent 401s lead to a single refresh exchange
// whose outcome every waiter shares.
type Coordinator struct {
	store    CredentialStore
	exchange ExchangeFunc
	group    singleflight.Group
	log      *zap.SugaredLogger
}

func NewCoordinator(store CredentialStore, exchange ExchangeFunc, log *zap.SugaredLogger) *Coordinator {
	return &Coordinator{store: store, exchange: exchange, log: log}
}

// EnsureFresh reports whether a usable access token newer than stale is in
// the store when it returns. It never returns an error: any failure is false.
// Cancelling ctx stops this caller's wait but not the shared exchange.
func (c *Coordinator) EnsureFresh(ctx context.Context, stale string) bool {
	cred, ok := c.store.Load()
	if !ok {
		return false
	}
	if cred.AccessToken != stale {
		return true
	}
	if cred.RefreshToken == "" {
		return false
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(refreshKey, func() (any, error) {
		return c.refresh(detached, stale), nil
	})

	select {
	case <-ctx.Done():
		return false
	case res := <-ch:
		fresh, _ := res.Val.(bool)
		return fresh
	}
}

func (c *Coordinator) refresh(ctx context.Context, stale string) bool {
	cred, ok := c.store.Load()
	if !ok || cred.RefreshToken == "" {
		return false
	}
	if cred.AccessToken != stale {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	pair, err := c.exchange(ctx, cred.RefreshToken)
	if err != nil {
		c.log.Warnw("Token refresh failed", "error", err)
		return false
	}

	next := Credential{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, UserID: cred.UserID}
	swapped, err := c.store.CompareAndSwap(cred, next)
	if err != nil {
		c.log.Warnw("Failed to store refreshed credentials", "error", err)
		return false
	}
	if !swapped {
		c.log.Debugw("Credentials changed during refresh, discarding new pair")
		current, ok := c.store.Load()
		return ok && current.AccessToken != stale
	}

	c.log.Debugw("Access token refreshed", "userID", cred.UserID)
	return true
}
