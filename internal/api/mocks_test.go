package api

import (
	"context"
	"fmt"

	"github.com/wayfarerhq/wayfarer/internal/cache"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
	"github.com/wayfarerhq/wayfarer/internal/storage"
)

type mockRepo struct {
	users    map[int64]*storage.User
	byName   map[string]*storage.User
	nextSub  int64
	nextPost int64
	postRefs map[int64]int64
	follows  map[[2]int64]bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		users:    map[int64]*storage.User{},
		byName:   map[string]*storage.User{},
		postRefs: map[int64]int64{},
		follows:  map[[2]int64]bool{},
	}
}

func (m *mockRepo) CreateUser(username, passwordHash string) (int64, error) {
	if _, exists := m.byName[username]; exists {
		return 0, storage.ErrUsernameTaken
	}
	m.nextSub++
	u := &storage.User{Sub: m.nextSub, Username: username, PasswordHash: passwordHash}
	m.users[u.Sub] = u
	m.byName[username] = u
	return u.Sub, nil
}

func (m *mockRepo) GetUserByUsername(username string) (*storage.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (m *mockRepo) GetUserBySub(sub int64) (*storage.User, error) {
	u, ok := m.users[sub]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (m *mockRepo) CreatePostRef(sub int64) (int64, error) {
	m.nextPost++
	m.postRefs[m.nextPost] = sub
	return m.nextPost, nil
}

func (m *mockRepo) DeletePostRef(postID int64) error {
	delete(m.postRefs, postID)
	return nil
}

func (m *mockRepo) FollowTripGoal(tripGoalID, sub int64) error {
	m.follows[[2]int64{tripGoalID, sub}] = true
	return nil
}

func (m *mockRepo) UnfollowTripGoal(tripGoalID, sub int64) error {
	delete(m.follows, [2]int64{tripGoalID, sub})
	return nil
}

func (m *mockRepo) FollowedTripGoalIDs(sub int64) ([]int64, error) {
	ids := []int64{}
	for k := range m.follows {
		if k[1] == sub {
			ids = append(ids, k[0])
		}
	}
	return ids, nil
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }

type mockSessions struct {
	m map[string]cache.Identity
	n int
}

func newMockSessions() *mockSessions { return &mockSessions{m: map[string]cache.Identity{}} }

func (s *mockSessions) Create(ctx context.Context, id cache.Identity) (string, error) {
	s.n++
	sid := fmt.Sprintf("sess-%d", s.n)
	s.m[sid] = id
	return sid, nil
}

func (s *mockSessions) Get(ctx context.Context, sessionID string) (*cache.Identity, error) {
	id, ok := s.m[sessionID]
	if !ok {
		return nil, cache.ErrNoSession
	}
	return &id, nil
}

func (s *mockSessions) Renew(ctx context.Context, sessionID string) (bool, error) {
	_, ok := s.m[sessionID]
	return ok, nil
}

func (s *mockSessions) Delete(ctx context.Context, sessionID string) error {
	delete(s.m, sessionID)
	return nil
}

type mockDocs struct {
	posts map[int64]*docstore.Post
	dests map[int64]*docstore.Destination
	goals map[int64]*docstore.TripGoal
}

func newMockDocs() *mockDocs {
	return &mockDocs{
		posts: map[int64]*docstore.Post{},
		dests: map[int64]*docstore.Destination{},
		goals: map[int64]*docstore.TripGoal{},
	}
}

func (d *mockDocs) ListPosts(ctx context.Context) ([]docstore.Post, error) {
	out := []docstore.Post{}
	for _, p := range d.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (d *mockDocs) GetPost(ctx context.Context, id int64) (*docstore.Post, error) {
	p, ok := d.posts[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (d *mockDocs) InsertPost(ctx context.Context, p *docstore.Post) error {
	cp := *p
	d.posts[p.ID] = &cp
	return nil
}

func (d *mockDocs) UpdatePost(ctx context.Context, p *docstore.Post) error {
	cp := *p
	d.posts[p.ID] = &cp
	return nil
}

func (d *mockDocs) DeletePost(ctx context.Context, id int64) error {
	delete(d.posts, id)
	return nil
}

func (d *mockDocs) ListDestinations(ctx context.Context) ([]docstore.Destination, error) {
	out := []docstore.Destination{}
	for _, dd := range d.dests {
		out = append(out, *dd)
	}
	return out, nil
}

func (d *mockDocs) GetDestination(ctx context.Context, id int64) (*docstore.Destination, error) {
	dd, ok := d.dests[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	cp := *dd
	return &cp, nil
}

func (d *mockDocs) GetDestinationByName(ctx context.Context, name string) (*docstore.Destination, error) {
	for _, dd := range d.dests {
		if dd.Name == name {
			cp := *dd
			return &cp, nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (d *mockDocs) InsertDestination(ctx context.Context, dd *docstore.Destination) error {
	cp := *dd
	d.dests[dd.ID] = &cp
	return nil
}

func (d *mockDocs) UpdateDestination(ctx context.Context, dd *docstore.Destination) error {
	cp := *dd
	d.dests[dd.ID] = &cp
	return nil
}

func (d *mockDocs) DeleteDestination(ctx context.Context, id int64) error {
	delete(d.dests, id)
	return nil
}

func (d *mockDocs) NextDestinationID(ctx context.Context) (int64, error) {
	var max int64
	for id := range d.dests {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (d *mockDocs) ResolveDestinations(ctx context.Context, ids []int64) ([]docstore.DestinationRef, error) {
	refs := make([]docstore.DestinationRef, 0, len(ids))
	for _, id := range ids {
		dd, ok := d.dests[id]
		if !ok {
			return nil, &docstore.MissingDestinationError{ID: id}
		}
		refs = append(refs, docstore.DestinationRef{ID: dd.ID, Name: dd.Name})
	}
	return refs, nil
}

func (d *mockDocs) TripGoalByUser(ctx context.Context, userID int64) (*docstore.TripGoal, error) {
	for _, tg := range d.goals {
		if tg.UserID == userID {
			cp := *tg
			return &cp, nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (d *mockDocs) TripGoalByID(ctx context.Context, id int64) (*docstore.TripGoal, error) {
	tg, ok := d.goals[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	cp := *tg
	return &cp, nil
}

func (d *mockDocs) TripGoalsByIDs(ctx context.Context, ids []int64) ([]docstore.TripGoal, error) {
	out := []docstore.TripGoal{}
	for _, id := range ids {
		if tg, ok := d.goals[id]; ok {
			out = append(out, *tg)
		}
	}
	return out, nil
}

func (d *mockDocs) InsertTripGoal(ctx context.Context, tg *docstore.TripGoal) error {
	cp := *tg
	d.goals[tg.ID] = &cp
	return nil
}

func (d *mockDocs) UpdateTripGoal(ctx context.Context, tg *docstore.TripGoal) error {
	cp := *tg
	d.goals[tg.ID] = &cp
	return nil
}

func (d *mockDocs) DeleteTripGoal(ctx context.Context, id int64) error {
	delete(d.goals, id)
	return nil
}

func (d *mockDocs) NextTripGoalID(ctx context.Context) (int64, error) {
	var max int64
	for id := range d.goals {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (d *mockDocs) Ping(ctx context.Context) error { return nil }

type mockPostCache struct {
	store map[int64]*docstore.Post
}

func newMockPostCache() *mockPostCache { return &mockPostCache{store: map[int64]*docstore.Post{}} }

func (c *mockPostCache) CachedPost(ctx context.Context, id int64, fetch cache.Fetch) (*docstore.Post, bool, error) {
	if p, ok := c.store[id]; ok {
		return p, true, nil
	}
	p, err := fetch(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

func (c *mockPostCache) CachePopular(ctx context.Context, posts []docstore.Post, minReactions int) (int, error) {
	n := 0
	for i := range posts {
		if len(posts[i].Reactions) >= minReactions {
			cp := posts[i]
			c.store[cp.ID] = &cp
			n++
		}
	}
	return n, nil
}
