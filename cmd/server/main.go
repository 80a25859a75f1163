package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/altay/inkdash/internal/archive"
	xredis "github.com/altay/inkdash/internal/redis"
	"github.com/altay/inkdash/internal/server"
	"github.com/altay/inkdash/internal/xslog"
)

const keyPort = "port"

const cacheCleanupInterval = time.Minute

func main() {
	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := server.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cache, closeCache, err := initCache(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize response cache: %w", err)
	}
	defer closeCache()

	var arc *archive.Archive
	if cfg.DatabaseURL != "" {
		arc, err = archive.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open close archive: %w", err)
		}
		defer arc.Close()
		logger.InfoContext(ctx, "close archive enabled")
	}

	handler := server.NewHandler(cfg, cache, arc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Routes(handler, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting api server", slog.String(keyPort, cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

// initCache prefers Redis when REDIS_URL is set and falls back to the
// in-process cache, which is fine for a single instance.
func initCache(ctx context.Context, cfg server.Config, logger *slog.Logger) (server.ResponseCache, func(), error) {
	if cfg.RedisURL != "" {
		client, err := xredis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		logger.InfoContext(ctx, "using redis response cache")
		return server.NewRedisResponseCache(client), func() { _ = client.Close() }, nil
	}

	logger.InfoContext(ctx, "using in-memory response cache")
	cache := server.NewMemoryResponseCache(cacheCleanupInterval)
	return cache, func() { _ = cache.Close() }, nil
}
