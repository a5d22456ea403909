package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/wedding-snap-story/internal/config"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens a client, pings the server and returns the configured database.
func ConnectDB(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Log.WithField("database", cfg.DatabaseName).Info("Connected to MongoDB")
	return client.Database(cfg.DatabaseName), nil
}

// EnsureIndexes creates the unique email index and the per-owner list indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"albums": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"photos": {
			{Keys: bson.D{{Key: "album_id", Value: 1}, {Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"guests": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "name", Value: 1}}},
		},
		"timeline_events": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "time", Value: 1}}},
		},
		"honeymoons": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_date", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}

	logger.Log.Info("MongoDB indexes ensured")
	return nil
}
