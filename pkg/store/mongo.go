package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default Mongo locations.
const (
	DefaultMongoDatabase   = "diagrams"
	DefaultMongoCollection = "graphs"
)

// MongoStore persists snapshots in a MongoDB collection, keyed by content
// hash. The serialized model's bson tags define the document shape, so a
// stored graph is queryable by metadata (name, stats) without a separate
// index document.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoOptions configures a Mongo store connection.
type MongoOptions struct {
	URI        string // defaults to "mongodb://localhost:27017"
	Database   string // defaults to DefaultMongoDatabase
	Collection string // defaults to DefaultMongoCollection
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping. Returns ErrUnavailable if the server cannot be reached.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		opts.URI = "mongodb://localhost:27017"
	}
	if opts.Database == "" {
		opts.Database = DefaultMongoDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultMongoCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: connect %s: %v", ErrUnavailable, opts.URI, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: ping %s: %v", ErrUnavailable, opts.URI, err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

// Save stores a record, replacing any existing one under the same hash.
func (s *MongoStore) Save(ctx context.Context, rec Record) error {
	filter := bson.M{"_id": rec.Hash}
	_, err := s.coll.ReplaceOne(ctx, filter, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s: %w", rec.Hash, err)
	}
	return nil
}

// Get retrieves a record by hash.
func (s *MongoStore) Get(ctx context.Context, hash string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": hash}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get %s: %w", hash, err)
	}
	return rec, nil
}

// List returns up to limit records, most recent first.
func (s *MongoStore) List(ctx context.Context, limit int64) ([]Record, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(limit)
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cursor.Close(ctx)

	var out []Record
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list decode: %w", err)
	}
	return out, nil
}

// Delete removes a record.
func (s *MongoStore) Delete(ctx context.Context, hash string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": hash}); err != nil {
		return fmt.Errorf("delete %s: %w", hash, err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
