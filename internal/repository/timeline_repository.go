package repository

import (
	"context"
	"fmt"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TimelineRepository struct {
	collection *mongo.Collection
}

func NewTimelineRepository(db *mongo.Database) *TimelineRepository {
	return &TimelineRepository{collection: db.Collection("timeline_events")}
}

func (r *TimelineRepository) CreateEvent(ctx context.Context, event *models.TimelineEvent) (*models.TimelineEvent, error) {
	event.CreatedAt = now()

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert timeline event")
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}
	if event.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEventsByUser sorts on the raw time label. No collation is set, so
// "08:00 AM" < "12:30 PM" < "2:00 PM" byte-wise.
func (r *TimelineRepository) GetEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TimelineEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("userID", userID.Hex()).Error("Failed to fetch timeline events")
		return nil, fmt.Errorf("failed to get timeline events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.TimelineEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode timeline events: %w", err)
	}
	return events, nil
}
