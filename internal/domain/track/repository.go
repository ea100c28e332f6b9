package track

import (
	"context"
	"time"
)

// Repository persists tracking records in a store with per-key expiry.
type Repository interface {
	// Save writes a record with a fresh TTL.
	Save(ctx context.Context, id string, t *Track, ttl time.Duration) error
	// Update overwrites a record while preserving its remaining TTL window.
	Update(ctx context.Context, id string, t *Track) error
	Get(ctx context.Context, id string) (*Track, error)
}
