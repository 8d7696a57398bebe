package auth

import (
	"context"
	"time"

	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/core/telemetry"

	"go.uber.org/zap"
)

// TokenSource hands out a provider's token, reading the cache first and
// authenticating on a miss. It is the only writer of the provider's cache entry.
type TokenSource struct {
	provider string
	cache    *TokenCache
	auth     Authenticator
	ttl      time.Duration
	metrics  *telemetry.Metrics
}

// NewTokenSource creates a token source. metrics may be nil.
func NewTokenSource(provider string, tokenCache *TokenCache, authenticator Authenticator, ttl time.Duration, metrics *telemetry.Metrics) *TokenSource {
	return &TokenSource{
		provider: provider,
		cache:    tokenCache,
		auth:     authenticator,
		ttl:      ttl,
		metrics:  metrics,
	}
}

// Provider returns the provider name the source serves.
func (s *TokenSource) Provider() string {
	return s.provider
}

// Token returns the cached token or acquires a new one.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	token, found, err := s.cache.Get(ctx, TokenKey(s.provider))
	if err != nil {
		logger.Ctx(ctx).Warn("Token cache read failed, authenticating",
			zap.String("provider", s.provider),
			zap.Error(err),
		)
	}
	if found {
		return token, nil
	}
	return s.Refresh(ctx)
}

// Refresh authenticates regardless of the cache and overwrites the cached token.
func (s *TokenSource) Refresh(ctx context.Context) (string, error) {
	token, err := s.auth.Authenticate(ctx)
	s.metrics.RecordRefresh(s.provider, err)
	if err != nil {
		logger.Ctx(ctx).Error("Authentication failed",
			zap.String("provider", s.provider),
			zap.Error(err),
		)
		return "", err
	}

	if err := s.cache.Set(ctx, TokenKey(s.provider), token, s.ttl); err != nil {
		logger.Ctx(ctx).Warn("Token cache write failed",
			zap.String("provider", s.provider),
			zap.Error(err),
		)
	}

	logger.Ctx(ctx).Info("Provider token refreshed",
		zap.String("provider", s.provider),
		zap.Duration("ttl", s.ttl),
	)
	return token, nil
}
