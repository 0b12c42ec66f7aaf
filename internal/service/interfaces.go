package service

import "context"

// RegenerationNotifier is told when an owner replaces their emergency token.
// Implementations must not block the caller.
type RegenerationNotifier interface {
	NotifyTokenRegenerated(ctx context.Context, userID string)
}

type noopNotifier struct{}

func (noopNotifier) NotifyTokenRegenerated(context.Context, string) {}
