package track

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Service exposes read access to tracking records.
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	Status(ctx context.Context, trackingID string) (*Track, error)
}

// NewService creates a new tracking service.
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "track_service"),
	}
}

// Status returns the tracking record for an identifier. It never mutates
// the record.
func (s *Service) Status(ctx context.Context, trackingID string) (*Track, error) {
	t, err := s.repo.Get(ctx, trackingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to load tracking record", "tracking_id", trackingID, "error", err)
		return nil, fmt.Errorf("load tracking record: %w", err)
	}
	return t, nil
}
