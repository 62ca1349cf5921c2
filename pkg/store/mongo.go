package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/framegrid/framegrid/pkg/plandoc"
)

// mongoCollection is the collection plans are stored in.
const mongoCollection = "plans"

// MongoStore is a MongoDB-backed plan store. Documents are stored in BSON
// with the plan id as the MongoDB document id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping. The database name selects where the plans collection lives.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(mongoCollection),
	}, nil
}

// Get retrieves the document stored under id.
func (s *MongoStore) Get(ctx context.Context, id string) (plandoc.Document, error) {
	var doc plandoc.Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return plandoc.Document{}, ErrNotFound
	}
	if err != nil {
		return plandoc.Document{}, fmt.Errorf("mongo find %s: %w", id, err)
	}
	return doc, nil
}

// Put stores a document under id, upserting by MongoDB document id.
func (s *MongoStore) Put(ctx context.Context, id string, doc plandoc.Document) error {
	doc.ID = id
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("mongo replace %s: %w", id, err)
	}
	return nil
}

// Delete removes the document stored under id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", id, err)
	}
	return nil
}

// List returns all stored plan ids, sorted ascending.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo distinct: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
