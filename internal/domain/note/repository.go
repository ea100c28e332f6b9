package note

import (
	"context"
	"time"
)

// Repository persists note records in a store with per-key expiry.
type Repository interface {
	Save(ctx context.Context, id string, n *Note, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Note, error)
	Delete(ctx context.Context, id string) error
}

// StatsRepository maintains the write-only creation counter.
type StatsRepository interface {
	IncrementCreated(ctx context.Context) (int64, error)
}
