package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vanishnote/internal/domain/note"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// NoteRepository stores note records under their bare identifier.
type NoteRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewNoteRepository(storage *Storage, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		storage: storage,
		log:     log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) Save(ctx context.Context, id string, n *note.Note, ttl time.Duration) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode note: %w", err)
	}
	if err := r.storage.client.Set(ctx, id, data, ttl).Err(); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	data, err := r.storage.client.Get(ctx, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, note.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	var n note.Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode note: %w", err)
	}
	return &n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.client.Del(ctx, id).Err(); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
