package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vanishnote/internal/domain/track"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

const trackKeyPrefix = "track:"

// TrackRepository stores tracking records under a "track:" prefixed key.
type TrackRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewTrackRepository(storage *Storage, log *slog.Logger) *TrackRepository {
	return &TrackRepository{
		storage: storage,
		log:     log.With("component", "track_repository"),
	}
}

func (r *TrackRepository) Save(ctx context.Context, id string, t *track.Track, ttl time.Duration) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode tracking record: %w", err)
	}
	if err := r.storage.client.Set(ctx, trackKeyPrefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("save tracking record: %w", err)
	}
	return nil
}

// Update overwrites a tracking record without resetting its TTL window.
func (r *TrackRepository) Update(ctx context.Context, id string, t *track.Track) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode tracking record: %w", err)
	}
	if err := r.storage.client.Set(ctx, trackKeyPrefix+id, data, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("update tracking record: %w", err)
	}
	return nil
}

func (r *TrackRepository) Get(ctx context.Context, id string) (*track.Track, error) {
	data, err := r.storage.client.Get(ctx, trackKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, track.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tracking record: %w", err)
	}

	var t track.Track
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode tracking record: %w", err)
	}
	return &t, nil
}
