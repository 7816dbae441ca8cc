package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/sticker/internal/config"
	"github.com/davidbz/sticker/internal/domain"
	"github.com/davidbz/sticker/internal/httpserver"
	"github.com/davidbz/sticker/internal/httpserver/middleware"
	"github.com/davidbz/sticker/internal/observability"
	"github.com/davidbz/sticker/internal/store/redis"
)

const (
	shutdownTimeout  = 10 * time.Second
	storePingTimeout = 5 * time.Second
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server, store domain.QuoteStore, logger *zap.Logger) error {
		defer func() { _ = logger.Sync() }()

		if closer, ok := store.(io.Closer); ok {
			defer func() {
				if closeErr := closer.Close(); closeErr != nil {
					logger.Warn("failed to close quote store", observability.Error(closeErr))
				}
			}()
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Quote Store
	if err := container.Provide(newQuoteStore); err != nil {
		log.Fatalf("Failed to provide quote store: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewQuoteService); err != nil {
		log.Fatalf("Failed to provide quote service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newQuoteStore selects Redis when an address is configured, memory otherwise.
func newQuoteStore(cfg *config.StoreConfig, logger *zap.Logger) (domain.QuoteStore, error) {
	if cfg.Addr == "" {
		logger.Info("quote store: in-memory")
		return domain.NewInMemoryQuoteStore(), nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	store := redis.NewQuoteStore(client, cfg.Prefix, cfg.TTLDuration())

	ctx, cancel := context.WithTimeout(context.Background(), storePingTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("quote store unavailable at %s: %w", cfg.Addr, err)
	}

	logger.Info("quote store: redis",
		observability.String("addr", cfg.Addr),
		observability.Int("db", cfg.DB),
		observability.Duration("ttl", cfg.TTLDuration()))

	return store, nil
}
