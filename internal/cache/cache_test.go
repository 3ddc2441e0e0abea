package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarerhq/wayfarer/internal/docstore"
)

func testClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestSessionLifecycle(t *testing.T) {
	mr, rdb := testClient(t)
	store := NewSessionStore(rdb, 10*time.Hour)
	ctx := context.Background()

	sid, err := store.Create(ctx, Identity{Sub: 7, Username: "ana"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !mr.Exists("session:" + sid) {
		t.Fatalf("expected session:%s key in redis", sid)
	}

	id, err := store.Get(ctx, sid)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if id.Sub != 7 || id.Username != "ana" {
		t.Fatalf("unexpected identity: %+v", id)
	}

	// Renew slides the TTL back to the full window.
	mr.FastForward(9 * time.Hour)
	ok, err := store.Renew(ctx, sid)
	if err != nil || !ok {
		t.Fatalf("renew: ok=%v err=%v", ok, err)
	}
	mr.FastForward(9 * time.Hour)
	if _, err := store.Get(ctx, sid); err != nil {
		t.Fatalf("session should survive after renew: %v", err)
	}

	if err := store.Delete(ctx, sid); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, sid); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if ok, _ := store.Renew(ctx, sid); ok {
		t.Fatal("renew of deleted session should report false")
	}
}

func TestSessionExpires(t *testing.T) {
	mr, rdb := testClient(t)
	store := NewSessionStore(rdb, time.Hour)
	ctx := context.Background()

	sid, err := store.Create(ctx, Identity{Sub: 1, Username: "ana"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(2 * time.Hour)
	if _, err := store.Get(ctx, sid); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after TTL, got %v", err)
	}
}

func reactions(n int) []docstore.Reaction {
	rs := make([]docstore.Reaction, n)
	for i := range rs {
		rs[i] = docstore.Reaction{UserID: int64(i + 1), UserName: "u", Reaction: "like"}
	}
	return rs
}

func TestCachePopularThreshold(t *testing.T) {
	mr, rdb := testClient(t)
	pc := NewPostCache(rdb, 24*time.Hour)
	ctx := context.Background()

	posts := []docstore.Post{
		{ID: 1, Reactions: reactions(5)},
		{ID: 2, Reactions: reactions(4)},
		{ID: 3, Reactions: reactions(9)},
	}
	n, err := pc.CachePopular(ctx, posts, 5)
	if err != nil {
		t.Fatalf("cache popular: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 cached posts, got %d", n)
	}
	if !mr.Exists("post:1") || mr.Exists("post:2") || !mr.Exists("post:3") {
		t.Fatal("wrong set of cached keys")
	}
}

func TestCachedPostReadThrough(t *testing.T) {
	_, rdb := testClient(t)
	pc := NewPostCache(rdb, 24*time.Hour)
	ctx := context.Background()

	hits, misses := 0, 0
	pc.SetEvents(func() { hits++ }, func() { misses++ })

	fetches := 0
	fetch := func(ctx context.Context, id int64) (*docstore.Post, error) {
		fetches++
		return &docstore.Post{ID: id, Content: "from mongo"}, nil
	}

	// Miss: served by fetch, not inserted into the cache.
	p, cached, err := pc.CachedPost(ctx, 9, fetch)
	if err != nil || cached || p.Content != "from mongo" {
		t.Fatalf("miss path: %+v cached=%v err=%v", p, cached, err)
	}
	if fetches != 1 || misses != 1 || hits != 0 {
		t.Fatalf("expected 1 fetch / 1 miss, got fetches=%d misses=%d hits=%d", fetches, misses, hits)
	}

	// Populate, then the same read is a hit.
	if err := pc.Put(ctx, &docstore.Post{ID: 9, Content: "cached"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	p, cached, err = pc.CachedPost(ctx, 9, fetch)
	if err != nil || !cached || p.Content != "cached" {
		t.Fatalf("hit path: %+v cached=%v err=%v", p, cached, err)
	}
	if fetches != 1 || hits != 1 {
		t.Fatalf("expected no extra fetch on hit, got fetches=%d hits=%d", fetches, hits)
	}
}

func TestCachedPostExpiry(t *testing.T) {
	mr, rdb := testClient(t)
	pc := NewPostCache(rdb, 24*time.Hour)
	ctx := context.Background()

	if err := pc.Put(ctx, &docstore.Post{ID: 4, Content: "hot"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	mr.FastForward(25 * time.Hour)
	_, ok, err := pc.Get(ctx, 4)
	if err != nil || ok {
		t.Fatalf("expected expired entry, ok=%v err=%v", ok, err)
	}
}
