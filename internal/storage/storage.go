// Package storage is the data-access collaborator: it persists
// subscription and user records and hands the engine an immutable,
// already-normalized snapshot per render pass.
package storage

import (
	"context"
	"errors"

	"subtrack/internal/core"
)

// ErrNotFound is returned when a subscription id does not exist.
var ErrNotFound = errors.New("subscription not found")

// Store is what the HTTP layer and the reminder worker need from a
// backend. List methods return fresh slices; callers own the result.
type Store interface {
	ListSubscriptions(ctx context.Context) ([]core.Subscription, error)
	CreateSubscription(ctx context.Context, sub core.Subscription) (core.Subscription, error)
	SetSubscriptionActive(ctx context.Context, id string, active bool) error
	DeleteSubscription(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]core.User, error)
	Close() error
}
