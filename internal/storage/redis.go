package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/models"
)

// RedisStore keeps the basket snapshot under a single namespaced Redis key
// as a JSON array, mirroring the one-slot browser storage it replaces.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, redisURL, key string, log *zap.Logger) (*RedisStore, error) {
	if log == nil {
		log = zap.NewNop()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client, key: key, log: log}, nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context) ([]models.Product, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load basket snapshot: %w", err)
	}

	items, err := decodeSnapshot(data)
	if err != nil {
		s.log.Warn("discarding malformed basket snapshot",
			zap.String("key", s.key),
			zap.Error(err))
		return nil, false, nil
	}
	return items, true, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, items []models.Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save basket snapshot: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear basket snapshot: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
