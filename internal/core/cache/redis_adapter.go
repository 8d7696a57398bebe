package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse-gateway/internal/core/config"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter implements the Cache interface using Redis.
// Every key is stored under "<prefix>:<key>".
type RedisAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisAdapter creates a Redis cache adapter from the connection settings.
func NewRedisAdapter(cfg config.RedisConfig) *RedisAdapter {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisAdapter{client: client, prefix: cfg.Prefix}
}

// NewRedisAdapterFromURL creates a Redis cache adapter from a URL in the format
// redis://[:password@]host[:port][/database].
func NewRedisAdapterFromURL(redisURL, prefix string) (*RedisAdapter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisAdapter{client: redis.NewClient(opts), prefix: prefix}, nil
}

// NewFromConfig picks the URL form when cfg.URL is set and the host/port form otherwise.
func NewFromConfig(cfg config.RedisConfig) (*RedisAdapter, error) {
	if cfg.URL != "" {
		return NewRedisAdapterFromURL(cfg.URL, cfg.Prefix)
	}
	return NewRedisAdapter(cfg), nil
}

func (r *RedisAdapter) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Get retrieves a value from Redis by key.
func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores a value in Redis with the specified TTL.
func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, r.key(key), value, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (r *RedisAdapter) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisAdapter) Close() error {
	return r.client.Close()
}
