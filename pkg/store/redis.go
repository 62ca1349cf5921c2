package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/framegrid/framegrid/pkg/plandoc"
)

// redisKeyPrefix namespaces plan keys so the store can share a Redis
// instance with other applications.
const redisKeyPrefix = "framegrid:plan:"

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore is a Redis-backed plan store for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Get retrieves the document stored under id.
func (s *RedisStore) Get(ctx context.Context, id string) (plandoc.Document, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return plandoc.Document{}, ErrNotFound
	}
	if err != nil {
		return plandoc.Document{}, fmt.Errorf("redis get %s: %w", id, err)
	}
	return plandoc.Unmarshal(data)
}

// Put stores a document under id. Plans never expire.
func (s *RedisStore) Put(ctx context.Context, id string, doc plandoc.Document) error {
	doc.ID = id
	data, err := plandoc.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+id, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", id, err)
	}
	return nil
}

// Delete removes the document stored under id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", id, err)
	}
	return nil
}

// List returns all stored plan ids, sorted ascending. It scans the key
// namespace incrementally rather than blocking the server with KEYS.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	slices.Sort(ids)
	return ids, nil
}

// Close releases the client's connection pool.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
