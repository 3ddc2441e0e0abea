package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
)

// PostCache stores popular posts under `post:<id>` as JSON. Reads fall
// through to the document store; concurrent misses for the same id are
// collapsed into a single fetch.
type PostCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	onHit  func()
	onMiss func()
}

func NewPostCache(rdb *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{rdb: rdb, ttl: ttl}
}

// SetEvents registers hit/miss callbacks used to feed telemetry
// counters. Either may be nil.
func (c *PostCache) SetEvents(onHit, onMiss func()) {
	c.onHit = onHit
	c.onMiss = onMiss
}

// Put stores one post for the cache TTL.
func (c *PostCache) Put(ctx context.Context, p *docstore.Post) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, postKey(p.ID), payload, c.ttl).Err()
}

// Get returns the cached post and whether it was present.
func (c *PostCache) Get(ctx context.Context, id int64) (*docstore.Post, bool, error) {
	payload, err := c.rdb.Get(ctx, postKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var p docstore.Post
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

// Fetch loads a post from the backing store on a cache miss.
type Fetch func(ctx context.Context, id int64) (*docstore.Post, error)

// CachedPost is the read-through path for GET /posts/:id. A hit serves
// from Redis; a miss fetches from the document store without populating
// the cache (only popular posts are cached). The boolean reports whether
// the post came from the cache.
func (c *PostCache) CachedPost(ctx context.Context, id int64, fetch Fetch) (*docstore.Post, bool, error) {
	p, ok, err := c.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if ok {
		if c.onHit != nil {
			c.onHit()
		}
		return p, true, nil
	}
	if c.onMiss != nil {
		c.onMiss()
	}
	v, err, _ := c.group.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		return fetch(ctx, id)
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*docstore.Post), false, nil
}

// CachePopular stores every post with at least minReactions reactions
// and returns how many were cached.
func (c *PostCache) CachePopular(ctx context.Context, posts []docstore.Post, minReactions int) (int, error) {
	cached := 0
	for i := range posts {
		if len(posts[i].Reactions) < minReactions {
			continue
		}
		if err := c.Put(ctx, &posts[i]); err != nil {
			return cached, err
		}
		cached++
	}
	return cached, nil
}

func postKey(id int64) string {
	return constants.PostKeyPrefix + strconv.FormatInt(id, 10)
}
