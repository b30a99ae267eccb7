// internal/infrastructure/database/mongo/connection.go
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/hfashion/storefront/internal/config"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the MongoDB client and the storefront database
type Client struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewConnection connects to MongoDB
func NewConnection(ctx context.Context, cfg config.MongoConfig, log logrus.FieldLogger) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetAppName("hfashion-storefront").
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.WithField("database", cfg.Database).Info("MongoDB connection established")

	return &Client{client: client, database: cfg.Database, collection: cfg.Collection}, nil
}

// Documents returns the collection holding session documents
func (c *Client) Documents() *mongo.Collection {
	return c.client.Database(c.database).Collection(c.collection)
}

// Health pings the primary
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
