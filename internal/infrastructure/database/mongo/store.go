package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type document struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store keeps session documents in a MongoDB collection, one document per key
type Store struct {
	coll *mongo.Collection
}

// NewStore creates a MongoDB-backed document store
func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	doc := document{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", key, err)
	}
	return nil
}
