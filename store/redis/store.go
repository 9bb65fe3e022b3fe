// Package redis stores high scores in Redis, one string key per game.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plus3/blockfall/store"
)

// Store is a Redis-backed store.Store
type Store struct {
	client *redis.Client
	cfg    Config
}

// Ensure Store implements the interface
var _ store.Store = (*Store)(nil)

// New connects to the Redis at cfg.URL and verifies the connection
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, key string) (int, bool, error) {
	raw, err := s.client.Get(ctx, highScoreKey(s.cfg.KeyPrefix, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", key, err)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", store.ErrInvalidValue, key, raw)
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value int) error {
	if err := s.client.Set(ctx, highScoreKey(s.cfg.KeyPrefix, key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
