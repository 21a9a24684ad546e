package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weekly-planner/config"
	_ "weekly-planner/docs" // Swagger docs
	"weekly-planner/internal/httpserver"
	"weekly-planner/internal/middleware"
	plannerHTTP "weekly-planner/internal/planner/delivery/http"
	kvRepo "weekly-planner/internal/planner/repository/kv"
	"weekly-planner/internal/planner/usecase"
	"weekly-planner/pkg/clock"
	"weekly-planner/pkg/kvstore"
	"weekly-planner/pkg/log"
)

// @title       Weekly Planner API
// @description Local-first weekly planner and daily task scheduling service.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Weekly Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	var store kvstore.Store
	if cfg.Storage.BasePath != "" {
		store = kvstore.NewDisk(kvstore.Options{
			BasePath:     cfg.Storage.BasePath,
			CacheSizeMax: cfg.Storage.CacheSizeMax,
		})
		logger.Infof(ctx, "Storage: disk at %s", cfg.Storage.BasePath)
	} else {
		store = kvstore.NewMemory()
		logger.Warn(ctx, "Storage: in-memory (no base path configured, data is not persisted)")
	}

	// 4. Planner domain
	repo := kvRepo.New(store, logger)
	plannerUC := usecase.New(logger, repo, clock.New())
	plannerHandler := plannerHTTP.New(logger, plannerUC)

	// 5. HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.Planner.RateLimitPerMin),
		PlannerHandler: plannerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
