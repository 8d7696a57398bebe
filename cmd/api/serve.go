package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/logger"
	"warehouse-gateway/internal/core/server"
	"warehouse-gateway/internal/core/telemetry"
	"warehouse-gateway/internal/gateway"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// bootstrap loads configuration and installs the global logger and message catalog.
func bootstrap() (*config.AppConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	i18n.SetDefault(i18n.New(cfg.Locale))

	return cfg, nil
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("locale", cfg.Locale),
		zap.Bool("proxy", cfg.Proxy.HasProxy()),
	)

	if cfg.Telemetry.Enabled {
		_, shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName, cfg.Telemetry.Version)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdownTracer(flushCtx); err != nil {
				l.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
		l.Info("Tracing enabled", zap.String("endpoint", cfg.Telemetry.Endpoint))
	}

	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)

	gw, err := gateway.New(cfg, metrics)
	if err != nil {
		return err
	}
	defer gw.Close()

	if err := gw.Warmup(ctx); err != nil {
		l.Error("Warmup failed", zap.Error(err))
		return err
	}
	l.Info("Token store connection verified")

	srv := server.New(cfg, prometheus.DefaultGatherer)
	gw.Register(srv.App.Group("/api"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("Server failed to start", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
