package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/artfoliopro/portfolio-api/internal/api"
	"github.com/artfoliopro/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/artfoliopro/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/artfoliopro/portfolio-api/internal/infrastructure/db/redis"
	"github.com/artfoliopro/portfolio-api/internal/infrastructure/media"
	"github.com/artfoliopro/portfolio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Redis powers duplicate-enquiry suppression only; the service runs
	// without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, duplicate-enquiry suppression disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	store, err := media.NewStore(cfg.UploadDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("media store init failed")
	}

	e := api.NewRouter(api.RouterDeps{
		DB:         db,
		Redis:      rdb,
		Media:      store,
		UploadsDir: cfg.UploadDir,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
