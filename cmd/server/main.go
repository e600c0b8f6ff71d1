// Package main запускает HTTP-сервис расчета финансирования недвижимости.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloud-ru/mcp-financing-go/internal/cache"
	"github.com/cloud-ru/mcp-financing-go/internal/config"
	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/server"
	"github.com/cloud-ru/mcp-financing-go/internal/service"
	"github.com/cloud-ru/mcp-financing-go/internal/tools"
	"github.com/cloud-ru/mcp-financing-go/internal/tracing"
	"github.com/cloud-ru/mcp-financing-go/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	store := newStore(cfg, log)
	svc := service.NewFinancingService(cfg, store, export.DefaultRegistry(), log)

	srv := server.New(server.Config{
		Log:   log,
		Port:  cfg.Port,
		Tools: tools.Registry(svc, tracer),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close cache")
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}
	log.Info().Msg("Server stopped")
}

func newStore(cfg *config.Config, log zerolog.Logger) cache.Store {
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("Using Redis result cache")
		return cache.NewRedisStore(cfg.RedisAddr, cfg.CacheTTL)
	default: // config.CacheBackendMemory, прочие значения отклоняет LoadConfig
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("Using in-memory result cache")
		return cache.NewMemoryStore(cfg.CacheTTL)
	}
}
