package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"featureboard/internal/api"
	"featureboard/internal/config"
	"featureboard/internal/metrics"
	"featureboard/internal/modal"
	"featureboard/internal/repository"
	"featureboard/internal/service"
	"featureboard/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// Initialize logger
	logger.InitLoggerWithFile(cfg.Server.Environment, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("application startup failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// 2. Initialize Infrastructure
	db, err := repository.Open(cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// The rate limiter falls back to an in-process bucket, so Redis is optional.
	rdb := initRedis(cfg.Redis)
	defer rdb.Close()

	// 3. Initialize Repositories
	features := repository.NewFeatureRepository(db)
	attributes := repository.NewAttributesRepository(db)
	lookups := repository.NewLookupRepository(db)

	// 4. Initialize Services
	observer := metrics.NewPrometheusObserver()
	pages := service.NewPageService(features, lookups, observer)
	svc := service.NewFeatureService(features, attributes, observer)
	dialogs := modal.NewRegistry()

	// 5. Setup HTTP Server
	r, err := api.RegisterRoutes(
		api.NewFeatureHandler(pages, svc, dialogs, cfg.Grid.PageSize),
		api.NewConsoleHandler(pages, svc, dialogs, cfg.Grid.PageSize),
		rdb,
		cfg,
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: r,
	}

	// 6. Start Server
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("env", cfg.Server.Environment),
			zap.String("db_driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen failed", zap.Error(err))
		}
	}()

	// 7. Graceful Shutdown Signal Wait
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Create a deadline to wait for current requests to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited properly")
	return nil
}

// -- Infrastructure Initializers --

func initRedis(cfg config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unreachable, rate limiting is local only", zap.String("addr", cfg.Addr), zap.Error(err))
	}
	return rdb
}
