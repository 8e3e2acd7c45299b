package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"subtrack/internal/core"
)

// MemoryRepository is an in-memory Store used for development and tests.
// It applies the same boundary normalization as the SQLite backend.
type MemoryRepository struct {
	mu    sync.RWMutex
	subs  []core.Subscription
	users []core.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed replaces the stored records wholesale.
func (r *MemoryRepository) Seed(subs []core.Subscription, users []core.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append([]core.Subscription(nil), subs...)
	for i := range r.subs {
		r.subs[i] = r.subs[i].Normalized()
	}
	r.users = append([]core.User(nil), users...)
}

func (r *MemoryRepository) ListSubscriptions(ctx context.Context) ([]core.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]core.Subscription(nil), r.subs...), nil
}

func (r *MemoryRepository) CreateSubscription(ctx context.Context, sub core.Subscription) (core.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub = sub.Normalized()
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	r.subs = append(r.subs, sub)
	return sub, nil
}

func (r *MemoryRepository) SetSubscriptionActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs[i].Active = active
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) DeleteSubscription(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.subs {
		if r.subs[i].ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) ListUsers(ctx context.Context) ([]core.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]core.User(nil), r.users...), nil
}

func (r *MemoryRepository) Close() error { return nil }
