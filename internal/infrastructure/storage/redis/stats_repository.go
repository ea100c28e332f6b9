package redis

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

const statsCreatedKey = "stats:total_notes_created"

// StatsRepository maintains the global creation counter. The counter has
// no TTL and no read path in the service.
type StatsRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewStatsRepository(storage *Storage, log *slog.Logger) *StatsRepository {
	return &StatsRepository{
		storage: storage,
		log:     log.With("component", "stats_repository"),
	}
}

func (r *StatsRepository) IncrementCreated(ctx context.Context) (int64, error) {
	total, err := r.storage.client.Incr(ctx, statsCreatedKey).Result()
	if err != nil {
		return 0, fmt.Errorf("increment creation counter: %w", err)
	}
	return total, nil
}
