package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boardkit/boardkit/pkg/board"
)

// RedisConfig holds connection settings for a Redis-backed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL expires boards after the given duration. Zero keeps them forever.
	TTL time.Duration

	// Prefix namespaces the keys. Defaults to "boardkit:board:".
	Prefix string
}

// RedisStore persists boards in Redis for multi-instance deployments.
// Boards are stored as JSON values; an index set tracks the stored IDs.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed board store.
func NewRedisStore(cfg RedisConfig) *RedisStore {
	if cfg.Prefix == "" {
		cfg.Prefix = "boardkit:board:"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}
}

// NewRedisStoreFromClient wraps an existing client, for callers that pool
// connections themselves.
func NewRedisStoreFromClient(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "boardkit:board:"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Close releases the underlying client connection.
func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) key(id string) string { return s.prefix + id }
func (s *RedisStore) indexKey() string     { return s.prefix + "index" }

func (s *RedisStore) Get(ctx context.Context, id string) (board.Board, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return board.Board{}, ErrNotFound
		}
		return board.Board{}, fmt.Errorf("redis get: %w", err)
	}
	var b board.Board
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return board.Board{}, fmt.Errorf("decode board %s: %w", id, err)
	}
	return b, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, b board.Board) error {
	if id == "" {
		return ErrInvalidID
	}
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode board %s: %w", id, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(id), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(id))
	pipe.SRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	return ids, nil
}
