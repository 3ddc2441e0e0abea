package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarerhq/wayfarer/internal/api"
	"github.com/wayfarerhq/wayfarer/internal/cache"
	"github.com/wayfarerhq/wayfarer/internal/config"
	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/storage"
	"github.com/wayfarerhq/wayfarer/internal/telemetry"
)

const dialTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Invalid configuration", err, nil)
	}

	db, err := storage.OpenAndMigrate(cfg.PostgresDSN())
	if err != nil {
		logging.Fatal("Failed to initialize PostgreSQL", err, nil)
	}
	repo := storage.NewPostgresRepository(db)

	dialCtx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	docs, err := docstore.Connect(dialCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		logging.Fatal("Failed to connect to MongoDB", err, nil)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	pingCtx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	err = rdb.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		logging.Fatal("Failed to connect to Redis", err, nil)
	}

	sessions := cache.NewSessionStore(rdb, cfg.SessionTTL)
	postCache := cache.NewPostCache(rdb, cfg.PostCacheTTL)
	postCache.SetEvents(telemetry.CacheHit, telemetry.CacheMiss)

	handler := api.NewHandler(repo, docs, sessions, postCache, cfg.StaticToken, cfg.CacheMinReactions,
		func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	// Background refresher: keep the popular-post cache warm without
	// waiting for someone to call POST /cache-posts.
	if cfg.CacheRefreshInterval > 0 {
		startCacheRefresher(docs, postCache, cfg.CacheRefreshInterval, cfg.CacheMinReactions)
	}

	router := api.BuildRouter(handler)
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.Addr})
	if err := router.Run(cfg.Addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
