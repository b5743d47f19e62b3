package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/communityhub/platform-api/internal/api"
	"github.com/communityhub/platform-api/internal/auth"
	"github.com/communityhub/platform-api/internal/core/service"
	"github.com/communityhub/platform-api/internal/infrastructure/config"
	mongodb "github.com/communityhub/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/communityhub/platform-api/internal/infrastructure/db/redis"
	"github.com/communityhub/platform-api/internal/infrastructure/queue"
	"github.com/communityhub/platform-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "platform-api"})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration load failed")
	}

	log := logger.Init(logger.Options{
		Service: "platform-api",
		Level:   cfg.LogLevel,
		Console: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	auditStore := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditStore, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		DB:         db,
		Redis:      redisClient,
		Tokens:     auth.NewTokenService(cfg.JWTSecret),
		Hasher:     auth.NewHasher(cfg.BcryptCost),
		Audit:      dispatcher,
		AuditStore: auditStore,
		AuthCfg: service.AuthConfig{
			TokenTTL:    cfg.TokenTTL,
			DefaultRole: cfg.DefaultRole,
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
