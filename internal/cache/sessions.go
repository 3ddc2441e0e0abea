// Package cache holds the Redis-backed session store and popular-post
// cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarerhq/wayfarer/internal/constants"
)

// ErrNoSession is returned when a session id is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Identity is the session payload: who the session belongs to.
type Identity struct {
	Sub      int64  `json:"sub"`
	Username string `json:"username"`
}

// SessionStore keeps sessions under `session:<id>` with a sliding TTL.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

// Create mints a new session id for the identity.
func (s *SessionStore) Create(ctx context.Context, id Identity) (string, error) {
	sessionID := uuid.NewString()
	payload, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, constants.SessionKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Get resolves a session id to its identity.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Identity, error) {
	payload, err := s.rdb.Get(ctx, constants.SessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var id Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// Renew restarts the TTL. It reports false when the session no longer
// exists.
func (s *SessionStore) Renew(ctx context.Context, sessionID string) (bool, error) {
	return s.rdb.Expire(ctx, constants.SessionKeyPrefix+sessionID, s.ttl).Result()
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, constants.SessionKeyPrefix+sessionID).Err()
}
