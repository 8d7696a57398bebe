// Package gateway assembles the provider integrations from configuration.
package gateway

import (
	"context"
	"fmt"

	"warehouse-gateway/internal/core/auth"
	"warehouse-gateway/internal/core/cache"
	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/httpclient"
	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/core/telemetry"
	mintsoftadapter "warehouse-gateway/internal/features/mintsoft/adapters"
	mintsoftdomain "warehouse-gateway/internal/features/mintsoft/domain"
	mintsofthandler "warehouse-gateway/internal/features/mintsoft/handler"
	mintsoftservice "warehouse-gateway/internal/features/mintsoft/service"
	shiprelayadapter "warehouse-gateway/internal/features/shiprelay/adapters"
	shiprelaydomain "warehouse-gateway/internal/features/shiprelay/domain"
	shiprelayhandler "warehouse-gateway/internal/features/shiprelay/handler"
	shiprelayservice "warehouse-gateway/internal/features/shiprelay/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Gateway owns the shared token store and one client per provider.
type Gateway struct {
	cfg    *config.AppConfig
	store  *cache.RedisAdapter
	tokens map[string]*auth.TokenSource

	shipRelay *provider.Client
	mintSoft  *provider.Client
}

// New wires the token store, token sources and provider clients. metrics may be nil.
func New(cfg *config.AppConfig, metrics *telemetry.Metrics) (*Gateway, error) {
	store, err := cache.NewFromConfig(cfg.Redis)
	if err != nil {
		return nil, err
	}
	tokenCache := auth.NewTokenCache(store)

	shipRelayHTTP := httpclient.NewClient(shiprelaydomain.ProviderName, cfg.UpstreamTimeout, cfg.Proxy)
	shipRelayTokens := auth.NewTokenSource(shiprelaydomain.ProviderName, tokenCache, auth.LoginAuth{
		Provider: shiprelaydomain.ProviderName,
		BaseURL:  cfg.ShipRelay.URL,
		Email:    cfg.ShipRelay.Email,
		Password: cfg.ShipRelay.Password,
		Client:   shipRelayHTTP,
	}, cfg.ShipRelay.TokenTTL, metrics)

	mintSoftTokens := auth.NewTokenSource(mintsoftdomain.ProviderName, tokenCache, auth.APIKeyAuth{
		Provider: mintsoftdomain.ProviderName,
		Key:      cfg.MintSoft.APIKey,
	}, cfg.MintSoft.TokenTTL, metrics)

	tokens := make(map[string]*auth.TokenSource, 2)
	for _, source := range []*auth.TokenSource{shipRelayTokens, mintSoftTokens} {
		tokens[source.Provider()] = source
	}

	return &Gateway{
		cfg:    cfg,
		store:  store,
		tokens: tokens,
		shipRelay: provider.New(provider.Options{
			Name:        shiprelaydomain.ProviderName,
			BaseURL:     cfg.ShipRelay.URL,
			HTTP:        shipRelayHTTP,
			Tokens:      shipRelayTokens,
			Header:      provider.BearerHeader,
			MaxAttempts: cfg.AuthRetryAttempts,
			Metrics:     metrics,
		}),
		mintSoft: provider.New(provider.Options{
			Name:        mintsoftdomain.ProviderName,
			BaseURL:     cfg.MintSoft.URL,
			HTTP:        httpclient.NewClient(mintsoftdomain.ProviderName, cfg.UpstreamTimeout, cfg.Proxy),
			Tokens:      mintSoftTokens,
			Header:      provider.APIKeyHeader("ms-apikey"),
			MaxAttempts: cfg.AuthRetryAttempts,
			Metrics:     metrics,
		}),
	}, nil
}

// Warmup verifies the token store is reachable and prefetches every provider token.
// Only an unreachable store is an error; a provider that cannot authenticate yet is
// retried lazily on the first request.
func (g *Gateway) Warmup(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := g.store.Ping(ctx); err != nil {
			return fmt.Errorf("token store unreachable: %w", err)
		}
		return nil
	})

	for name, source := range g.tokens {
		eg.Go(func() error {
			if _, err := source.Token(ctx); err != nil {
				logger.Ctx(ctx).Warn("Token prefetch failed",
					zap.String("provider", name),
					zap.Error(err),
				)
				return nil
			}
			logger.Ctx(ctx).Info("Token ready", zap.String("provider", name))
			return nil
		})
	}

	return eg.Wait()
}

// Refresh forces a new token for the named provider and stores it.
func (g *Gateway) Refresh(ctx context.Context, providerName string) error {
	source, ok := g.tokens[providerName]
	if !ok {
		return fmt.Errorf("unknown provider %q", providerName)
	}
	_, err := source.Refresh(ctx)
	return err
}

// Register mounts both integrations under router.
func (g *Gateway) Register(router fiber.Router) {
	shipRelay := shiprelayservice.NewShipRelayService(shiprelayadapter.NewShipRelayAdapter(g.shipRelay))
	shiprelayhandler.NewShipRelayHandler(shipRelay, g.cfg.Pagination).Register(router.Group("/shiprelay"))

	mintSoft := mintsoftservice.NewMintSoftService(mintsoftadapter.NewMintSoftAdapter(g.mintSoft))
	mintsofthandler.NewMintSoftHandler(mintSoft, g.cfg.Pagination).Register(router.Group("/mintsoft"))
}

// Close releases the token store connection.
func (g *Gateway) Close() error {
	return g.store.Close()
}
