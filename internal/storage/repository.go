package storage

import (
	"context"
	"errors"
)

// ErrUsernameTaken is returned by CreateUser when the username is
// already registered.
var ErrUsernameTaken = errors.New("username already exists")

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// CreateUser registers a username with a bcrypt password hash and
	// returns the generated sub.
	CreateUser(username, passwordHash string) (int64, error)
	// GetUserByUsername fetches a user for credential checks.
	GetUserByUsername(username string) (*User, error)
	// GetUserBySub resolves a sub to its user row (display names).
	GetUserBySub(sub int64) (*User, error)

	// CreatePostRef inserts an ownership row and returns the serial
	// post id used as the MongoDB document id.
	CreatePostRef(sub int64) (int64, error)
	DeletePostRef(postID int64) error

	FollowTripGoal(tripGoalID, sub int64) error
	UnfollowTripGoal(tripGoalID, sub int64) error
	// FollowedTripGoalIDs lists the trip goal ids a user follows.
	FollowedTripGoalIDs(sub int64) ([]int64, error)

	// Ping reports whether the database connection is alive.
	Ping(ctx context.Context) error
}
