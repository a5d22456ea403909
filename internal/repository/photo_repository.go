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

type PhotoRepository struct {
	collection *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{collection: db.Collection("photos")}
}

func (r *PhotoRepository) CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	photo.CreatedAt = now()
	photo.Likes = 0

	result, err := r.collection.InsertOne(ctx, photo)
	if err != nil {
		logger.Log.WithError(err).WithField("albumID", photo.AlbumID.Hex()).Error("Failed to insert photo")
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}
	if photo.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	logger.Log.WithField("photoID", photo.ID.Hex()).Info("Photo created successfully")
	return photo, nil
}

// GetPhotosByAlbum lists the user's photos in one album, newest first.
func (r *PhotoRepository) GetPhotosByAlbum(ctx context.Context, userID, albumID primitive.ObjectID) ([]models.Photo, error) {
	filter := bson.M{"album_id": albumID, "user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("albumID", albumID.Hex()).Error("Failed to fetch photos")
		return nil, fmt.Errorf("failed to get photos: %w", err)
	}
	defer cursor.Close(ctx)

	photos := []models.Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	return photos, nil
}
