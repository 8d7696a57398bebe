package auth

import (
	"context"
	"errors"
	"time"

	"warehouse-gateway/internal/core/cache"
)

// TokenCache stores provider tokens in a shared cache.
type TokenCache struct {
	store cache.Cache
}

// NewTokenCache wraps a cache store.
func NewTokenCache(store cache.Cache) *TokenCache {
	return &TokenCache{store: store}
}

// Get returns the token under key. A missing key is reported as found=false, not as an error.
func (c *TokenCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.store.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if len(val) == 0 {
		return "", false, nil
	}
	return string(val), true, nil
}

// Set overwrites the token under key with the given TTL.
func (c *TokenCache) Set(ctx context.Context, key, token string, ttl time.Duration) error {
	return c.store.Set(ctx, key, []byte(token), ttl)
}

// TokenKey is the cache key of a provider's token.
func TokenKey(provider string) string {
	return "token:" + provider
}
