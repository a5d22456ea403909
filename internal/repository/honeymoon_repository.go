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

type HoneymoonRepository struct {
	collection *mongo.Collection
}

func NewHoneymoonRepository(db *mongo.Database) *HoneymoonRepository {
	return &HoneymoonRepository{collection: db.Collection("honeymoons")}
}

func (r *HoneymoonRepository) CreateHoneymoon(ctx context.Context, h *models.Honeymoon) (*models.Honeymoon, error) {
	h.CreatedAt = now()

	result, err := r.collection.InsertOne(ctx, h)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert honeymoon")
		return nil, fmt.Errorf("failed to create honeymoon: %w", err)
	}
	if h.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}
	return h, nil
}

// GetHoneymoonsByUser lists a user's honeymoon entries by start date ascending.
func (r *HoneymoonRepository) GetHoneymoonsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Honeymoon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("userID", userID.Hex()).Error("Failed to fetch honeymoons")
		return nil, fmt.Errorf("failed to get honeymoons: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.Honeymoon{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode honeymoons: %w", err)
	}
	return entries, nil
}
