package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/service"
	mongodb "github.com/asadbek201001/Ilmhub-Coin-system/internal/infrastructure/db/mongo"
	redisdb "github.com/asadbek201001/Ilmhub-Coin-system/internal/infrastructure/db/redis"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/pkg/config"
	"github.com/asadbek201001/Ilmhub-Coin-system/pkg/logger"
)

// @title        Ilmhub Coin System API
// @version      1.0
// @description  Role-based rewards platform: teachers grant coins, students spend them on catalog items.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	if err := mongodb.NewCredentialRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("credential index creation failed")
	}

	// Seed the default admin and teacher accounts if they are missing.
	store := redisdb.NewRecordStore(rdb)
	if err := service.Bootstrap(ctx, store, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.TokenTTL)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
