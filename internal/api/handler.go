package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/cache"
	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/storage"
)

// DocStore is the slice of the document store the handlers use.
type DocStore interface {
	ListPosts(ctx context.Context) ([]docstore.Post, error)
	GetPost(ctx context.Context, id int64) (*docstore.Post, error)
	InsertPost(ctx context.Context, p *docstore.Post) error
	UpdatePost(ctx context.Context, p *docstore.Post) error
	DeletePost(ctx context.Context, id int64) error

	ListDestinations(ctx context.Context) ([]docstore.Destination, error)
	GetDestination(ctx context.Context, id int64) (*docstore.Destination, error)
	GetDestinationByName(ctx context.Context, name string) (*docstore.Destination, error)
	InsertDestination(ctx context.Context, d *docstore.Destination) error
	UpdateDestination(ctx context.Context, d *docstore.Destination) error
	DeleteDestination(ctx context.Context, id int64) error
	NextDestinationID(ctx context.Context) (int64, error)
	ResolveDestinations(ctx context.Context, ids []int64) ([]docstore.DestinationRef, error)

	TripGoalByUser(ctx context.Context, userID int64) (*docstore.TripGoal, error)
	TripGoalByID(ctx context.Context, id int64) (*docstore.TripGoal, error)
	TripGoalsByIDs(ctx context.Context, ids []int64) ([]docstore.TripGoal, error)
	InsertTripGoal(ctx context.Context, tg *docstore.TripGoal) error
	UpdateTripGoal(ctx context.Context, tg *docstore.TripGoal) error
	DeleteTripGoal(ctx context.Context, id int64) error
	NextTripGoalID(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
}

// Sessions is the session store surface the handlers use.
type Sessions interface {
	Create(ctx context.Context, id cache.Identity) (string, error)
	Get(ctx context.Context, sessionID string) (*cache.Identity, error)
	Renew(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// PostCache is the popular-post cache surface the handlers use.
type PostCache interface {
	CachedPost(ctx context.Context, id int64, fetch cache.Fetch) (*docstore.Post, bool, error)
	CachePopular(ctx context.Context, posts []docstore.Post, minReactions int) (int, error)
}

// Pinger reports datastore liveness for the health endpoint.
type Pinger func(ctx context.Context) error

// Handler carries the datastore handles shared by all endpoints.
type Handler struct {
	repo         storage.Repository
	docs         DocStore
	sessions     Sessions
	cache        PostCache
	staticToken  string
	minReactions int
	redisPing    Pinger
}

func NewHandler(repo storage.Repository, docs DocStore, sessions Sessions, postCache PostCache, staticToken string, minReactions int, redisPing Pinger) *Handler {
	return &Handler{
		repo:         repo,
		docs:         docs,
		sessions:     sessions,
		cache:        postCache,
		staticToken:  staticToken,
		minReactions: minReactions,
		redisPing:    redisPing,
	}
}

// Context keys for the authenticated identity.
const (
	ctxKeySub      = "sub"
	ctxKeyUserName = "userName"
)

// identity returns the session identity injected by SessionRequired.
func identity(c *gin.Context) (cache.Identity, bool) {
	sub, ok := c.Get(ctxKeySub)
	if !ok {
		return cache.Identity{}, false
	}
	name, _ := c.Get(ctxKeyUserName)
	username, _ := name.(string)
	return cache.Identity{Sub: sub.(int64), Username: username}, true
}

// pathID parses an integer path parameter. A malformed id behaves as a
// missing resource.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// splitCSV turns a non-empty comma-separated form value into a list.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// parseIDList converts a comma-separated id string to integers.
func parseIDList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: "internal error"})
}
