package main

import (
	"context"
	"time"

	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/logging"
)

const refreshTimeout = 30 * time.Second

// startCacheRefresher periodically re-caches posts whose reaction count
// crosses the popularity threshold. The REST surface exposes the same
// operation on demand via POST /cache-posts.
func startCacheRefresher(docs interface {
	ListPosts(ctx context.Context) ([]docstore.Post, error)
}, pc interface {
	CachePopular(ctx context.Context, posts []docstore.Post, minReactions int) (int, error)
}, interval time.Duration, minReactions int) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := refreshPopularPosts(docs, pc, minReactions); err != nil {
				logging.Error("cache refresher failed", err, nil)
			}
		}
	}()
}

func refreshPopularPosts(docs interface {
	ListPosts(ctx context.Context) ([]docstore.Post, error)
}, pc interface {
	CachePopular(ctx context.Context, posts []docstore.Post, minReactions int) (int, error)
}, minReactions int) error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	posts, err := docs.ListPosts(ctx)
	if err != nil {
		return err
	}
	n, err := pc.CachePopular(ctx, posts, minReactions)
	if err != nil {
		return err
	}
	if n > 0 {
		logging.Info("Refreshed popular post cache", logging.Fields{"cached": n})
	}
	return nil
}
