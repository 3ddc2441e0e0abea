//go:build integration

package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Requires a running MongoDB, e.g.
//
//	WAYFARER_TEST_MONGO_URI="mongodb://localhost:27017" \
//	  go test -tags integration ./internal/docstore
func openTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("WAYFARER_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("WAYFARER_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Connect(ctx, uri, "wayfarer_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.db.Drop(ctx)
		_ = s.Close(ctx)
	})
	return s
}

func TestDestinationIDsAndResolve(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.NextDestinationID(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, id, "empty collection should allocate id 1")

	d := &Destination{ID: id, UserID: 1, UserName: "ana", Name: "Arenal",
		Description: "volcano", City: "La Fortuna", Country: "CR",
		Media: []string{"a.jpg"}, Comments: []Comment{}, Reactions: []Reaction{}}
	require.NoError(t, s.InsertDestination(ctx, d))

	next, err := s.NextDestinationID(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, next)

	refs, err := s.ResolveDestinations(ctx, []int64{1})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, "Arenal", refs[0].Name)

	_, err = s.ResolveDestinations(ctx, []int64{99})
	var missing *MissingDestinationError
	require.ErrorAs(t, err, &missing)
	require.EqualValues(t, 99, missing.ID)
}

func TestPostRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := &Post{ID: 7, UserID: 1, UserName: "ana", Content: "hola",
		Media: []string{"x.jpg"}, Destinations: []DestinationRef{{ID: 1, Name: "Arenal"}},
		Reactions: []Reaction{}, Comments: []Comment{}}
	require.NoError(t, s.InsertPost(ctx, p))

	got, err := s.GetPost(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "hola", got.Content)

	got.Content = "hola (edited)"
	require.NoError(t, s.UpdatePost(ctx, got))

	require.NoError(t, s.DeletePost(ctx, 7))

	_, err = s.GetPost(ctx, 7)
	require.ErrorIs(t, err, ErrNotFound)
}
