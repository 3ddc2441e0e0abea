//go:build integration

package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Requires a running PostgreSQL, e.g.
//
//	WAYFARER_TEST_PG_DSN="host=localhost port=5432 user=myuser password=mypassword dbname=mydatabase sslmode=disable" \
//	  go test -tags integration ./internal/storage
func openTestRepo(t *testing.T) Repository {
	t.Helper()
	dsn := os.Getenv("WAYFARER_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("WAYFARER_TEST_PG_DSN not set")
	}
	db, err := OpenAndMigrate(dsn)
	require.NoError(t, err)
	return NewPostgresRepository(db)
}

func TestUserLifecycle(t *testing.T) {
	repo := openTestRepo(t)
	username := fmt.Sprintf("it-user-%d", time.Now().UnixNano())

	sub, err := repo.CreateUser(username, "$2a$10$hash")
	require.NoError(t, err)

	_, err = repo.CreateUser(username, "$2a$10$hash")
	require.ErrorIs(t, err, ErrUsernameTaken)

	u, err := repo.GetUserBySub(sub)
	require.NoError(t, err)
	require.Equal(t, username, u.Username)
}

func TestFollowLifecycle(t *testing.T) {
	repo := openTestRepo(t)
	sub, err := repo.CreateUser(fmt.Sprintf("it-follower-%d", time.Now().UnixNano()), "$2a$10$hash")
	require.NoError(t, err)

	require.NoError(t, repo.FollowTripGoal(42, sub))

	ids, err := repo.FollowedTripGoalIDs(sub)
	require.NoError(t, err)
	require.Equal(t, []int64{42}, ids)

	require.NoError(t, repo.UnfollowTripGoal(42, sub))

	ids, err = repo.FollowedTripGoalIDs(sub)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestPing(t *testing.T) {
	repo := openTestRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, repo.Ping(ctx))
}
