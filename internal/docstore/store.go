package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collPosts        = "posts"
	collDestinations = "destinations"
	collTripGoals    = "tripGoals"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// MissingDestinationError identifies which destination id failed to
// resolve, so handlers can echo it back to the client.
type MissingDestinationError struct {
	ID int64
}

func (e *MissingDestinationError) Error() string {
	return fmt.Sprintf("destination with id %d not found", e.ID)
}

// Store wraps the MongoDB database holding the content documents.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ---- posts ----

func (s *Store) ListPosts(ctx context.Context) ([]Post, error) {
	cur, err := s.db.Collection(collPosts).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	posts := []Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (*Post, error) {
	var p Post
	err := s.db.Collection(collPosts).FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) InsertPost(ctx context.Context, p *Post) error {
	_, err := s.db.Collection(collPosts).InsertOne(ctx, p)
	return err
}

func (s *Store) UpdatePost(ctx context.Context, p *Post) error {
	_, err := s.db.Collection(collPosts).UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	return err
}

func (s *Store) DeletePost(ctx context.Context, id int64) error {
	_, err := s.db.Collection(collPosts).DeleteOne(ctx, bson.M{"id": id})
	return err
}

// ---- destinations ----

func (s *Store) ListDestinations(ctx context.Context) ([]Destination, error) {
	cur, err := s.db.Collection(collDestinations).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	dests := []Destination{}
	if err := cur.All(ctx, &dests); err != nil {
		return nil, err
	}
	return dests, nil
}

func (s *Store) GetDestination(ctx context.Context, id int64) (*Destination, error) {
	var d Destination
	err := s.db.Collection(collDestinations).FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *Store) GetDestinationByName(ctx context.Context, name string) (*Destination, error) {
	var d Destination
	err := s.db.Collection(collDestinations).FindOne(ctx, bson.M{"name": name}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *Store) InsertDestination(ctx context.Context, d *Destination) error {
	_, err := s.db.Collection(collDestinations).InsertOne(ctx, d)
	return err
}

func (s *Store) UpdateDestination(ctx context.Context, d *Destination) error {
	_, err := s.db.Collection(collDestinations).UpdateOne(ctx, bson.M{"id": d.ID}, bson.M{"$set": d})
	return err
}

func (s *Store) DeleteDestination(ctx context.Context, id int64) error {
	_, err := s.db.Collection(collDestinations).DeleteOne(ctx, bson.M{"id": id})
	return err
}

// NextDestinationID allocates the next id with a descending scan
// (max id + 1, starting at 1 on an empty collection).
func (s *Store) NextDestinationID(ctx context.Context) (int64, error) {
	return s.nextID(ctx, collDestinations)
}

// ResolveDestinations validates every id and returns {id,name} pairs in
// input order. The first unknown id aborts with MissingDestinationError.
func (s *Store) ResolveDestinations(ctx context.Context, ids []int64) ([]DestinationRef, error) {
	refs := make([]DestinationRef, 0, len(ids))
	for _, id := range ids {
		d, err := s.GetDestination(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, &MissingDestinationError{ID: id}
			}
			return nil, err
		}
		refs = append(refs, DestinationRef{ID: d.ID, Name: d.Name})
	}
	return refs, nil
}

// ---- trip goals ----

func (s *Store) TripGoalByUser(ctx context.Context, userID int64) (*TripGoal, error) {
	var tg TripGoal
	err := s.db.Collection(collTripGoals).FindOne(ctx, bson.M{"user_id": userID}).Decode(&tg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tg, nil
}

func (s *Store) TripGoalByID(ctx context.Context, id int64) (*TripGoal, error) {
	var tg TripGoal
	err := s.db.Collection(collTripGoals).FindOne(ctx, bson.M{"id": id}).Decode(&tg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tg, nil
}

func (s *Store) TripGoalsByIDs(ctx context.Context, ids []int64) ([]TripGoal, error) {
	cur, err := s.db.Collection(collTripGoals).Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	goals := []TripGoal{}
	if err := cur.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Store) InsertTripGoal(ctx context.Context, tg *TripGoal) error {
	_, err := s.db.Collection(collTripGoals).InsertOne(ctx, tg)
	return err
}

func (s *Store) UpdateTripGoal(ctx context.Context, tg *TripGoal) error {
	_, err := s.db.Collection(collTripGoals).UpdateOne(ctx, bson.M{"id": tg.ID}, bson.M{"$set": tg})
	return err
}

func (s *Store) DeleteTripGoal(ctx context.Context, id int64) error {
	_, err := s.db.Collection(collTripGoals).DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (s *Store) NextTripGoalID(ctx context.Context) (int64, error) {
	return s.nextID(ctx, collTripGoals)
}

func (s *Store) nextID(ctx context.Context, coll string) (int64, error) {
	var doc struct {
		ID int64 `bson:"id"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	err := s.db.Collection(coll).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, err
	}
	return doc.ID + 1, nil
}
