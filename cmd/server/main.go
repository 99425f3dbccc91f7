package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghive/blog-platform/internal/api"
	"github.com/bloghive/blog-platform/internal/api/handler"
	"github.com/bloghive/blog-platform/internal/core/service"
	authinfra "github.com/bloghive/blog-platform/internal/infrastructure/auth"
	"github.com/bloghive/blog-platform/internal/infrastructure/config"
	mongoinfra "github.com/bloghive/blog-platform/internal/infrastructure/db/mongo"
	redisinfra "github.com/bloghive/blog-platform/internal/infrastructure/db/redis"
	"github.com/bloghive/blog-platform/internal/infrastructure/queue"
	"github.com/bloghive/blog-platform/pkg/logger"
)

// @title        Bloghive API
// @version      1.0
// @description  Blog platform with token-gated post management.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	userRepo := mongoinfra.NewUserRepository(db)
	postRepo := mongoinfra.NewPostRepository(db)
	activityRepo := mongoinfra.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := activityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("activity index creation failed")
	}

	// --- Security primitives ---
	tokens, err := authinfra.NewJWTService(cfg.AccessSecret, cfg.ResetSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}
	hasher := authinfra.NewBcryptHasher()
	resetStore := redisinfra.NewResetTokenStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, hasher, tokens, resetStore, log)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(0, activityService, log)
	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()
	dispatcher.Start(workerCtx)

	postService := service.NewPostService(postRepo, activityRepo, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Log:    log,
		Tokens: tokens,
		Auth:   handler.NewAuthHandler(authService),
		Users:  handler.NewUserHandler(userRepo),
		Posts:  handler.NewPostHandler(postService),
		Mongo:  db,
		Redis:  rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
