// Package redis is the store adapter: typed repositories for note records,
// tracking records and the creation counter over a shared Redis client.
// Redis-side TTL expiry is the only durability guarantee the service has.
package redis

import (
	"context"
	"fmt"

	"vanishnote/internal/app/server/config"

	"github.com/redis/go-redis/v9"
)

type Storage struct {
	client *redis.Client
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Storage{client: client}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) Client() *redis.Client {
	return s.client
}
