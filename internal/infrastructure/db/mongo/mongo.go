package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config names the portal database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store is an open connection to the portal database. The application,
// review and account repositories are built from DB.
type Store struct {
	client *mongo.Client
	DB     *mongo.Database
}

// Open dials cfg.URI and waits for the primary to answer before returning.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	openCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(openCtx, options.Client().
		ApplyURI(cfg.URI).
		SetAppName("nyayasetu"))
	if err != nil {
		return nil, fmt.Errorf("open portal database: %w", err)
	}
	if err := client.Ping(openCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("open portal database: %w", err)
	}

	return &Store{client: client, DB: client.Database(cfg.Database)}, nil
}

// Ping reports whether the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the lookups used by the review queue and its audit
// trail. Existing indexes are left alone.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := NewApplicationRepository(s.DB).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("index %s: %w", collectionApplications, err)
	}
	_, err := s.DB.Collection(collectionReviewEvents).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "application_id", Value: 1}, {Key: "at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("index %s: %w", collectionReviewEvents, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
