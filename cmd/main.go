package main

import (
	"context"

	"github.com/rryowa/medcard/internal/api"
	"github.com/rryowa/medcard/internal/controller"
	"github.com/rryowa/medcard/internal/migrations"
	"github.com/rryowa/medcard/internal/service"
	"github.com/rryowa/medcard/internal/storage"
	"github.com/rryowa/medcard/internal/storage/memory"
	"github.com/rryowa/medcard/internal/storage/postgres"
	"github.com/rryowa/medcard/internal/storage/redis"
	"github.com/rryowa/medcard/internal/util"
)

func main() {
	ctx := context.Background()

	cfg, err := util.LoadConfig()
	if err != nil {
		util.NewZapLogger("info").Fatalf("config: %v", err)
	}
	logger := util.NewZapLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	var cleanupFuncs []func()
	defer func() {
		for i := len(cleanupFuncs) - 1; i >= 0; i-- {
			cleanupFuncs[i]()
		}
	}()

	var store storage.Storage
	switch cfg.DB.Driver {
	case util.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		store = memory.NewStorage(logger)
	default:
		db, dbCleanup, err := util.NewDBConnection(cfg.DB, logger)
		if err != nil {
			logger.Fatal(err)
		}
		cleanupFuncs = append(cleanupFuncs, dbCleanup)

		if err := migrations.RunMigrations(db, logger); err != nil {
			logger.Fatal(err)
		}
		store = postgres.NewStorage(db)
	}

	redisClient, redisCleanup, err := util.NewRedisClient(ctx, logger, cfg.Redis)
	if err != nil {
		logger.Fatal(err)
	}
	cleanupFuncs = append(cleanupFuncs, redisCleanup)

	tokenStorage := redis.NewTokenStorage(redisClient)
	limiter := redis.NewRateLimiter(redisClient, cfg.RateLimiter.Limit, cfg.RateLimiter.Interval, cfg.RateLimiter.BlockTime)

	tokenService := service.NewTokenService(cfg.Token, tokenStorage)
	webhookService := service.NewWebhookService(logger, cfg.WebhookURL)
	authService := service.NewAuthService(store, tokenService, logger)
	recordService := service.NewRecordService(store, logger)
	emergencyService := service.NewEmergencyService(store, webhookService, logger)

	ctrl := controller.NewController(logger, authService, recordService, emergencyService)

	apiServer := api.NewAPI(ctrl, logger, &cfg.Server, tokenService, limiter)
	apiServer.Run(ctx)

	webhookService.Wait()
}
