// Package database provides the optional MongoDB connection.
// #CODE_ASSUMPTION: The dashboard has no persistent data model yet; the
// client exists so deployments with DATABASE_URL set get pooling and
// health checks from day one.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	appconfig "github.com/mvp-tools/dashboard_backend/internal/config"
)

// Config holds MongoDB connection configuration
type Config struct {
	URI                    string
	MaxPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

// FromAppConfig derives connection settings from the application
// configuration. DATABASE_POOL_SIZE caps the connection pool.
func FromAppConfig(cfg *appconfig.Config) Config {
	return Config{
		URI:                    cfg.DatabaseURL,
		MaxPoolSize:            uint64(cfg.DatabasePoolSize),
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}
}

// Client wraps the MongoDB client with helper methods
type Client struct {
	client *mongo.Client
	config Config
}

// NewClient creates a new MongoDB client and verifies the connection.
func NewClient(cfg Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	// #IMPLEMENTATION_DECISION: Using connection pooling for performance
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with ping
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		config: cfg,
	}, nil
}

// Ping verifies the connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
