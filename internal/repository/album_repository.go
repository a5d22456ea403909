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

type AlbumRepository struct {
	collection *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) *AlbumRepository {
	return &AlbumRepository{collection: db.Collection("albums")}
}

// CreateAlbum inserts an album. The cover starts unset.
func (r *AlbumRepository) CreateAlbum(ctx context.Context, album *models.Album) (*models.Album, error) {
	album.CreatedAt = now()
	album.CoverImage = ""

	result, err := r.collection.InsertOne(ctx, album)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert album")
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	if album.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	logger.Log.WithField("albumID", album.ID.Hex()).Info("Album created successfully")
	return album, nil
}

// GetAlbumByID returns the album only if it belongs to userID.
func (r *AlbumRepository) GetAlbumByID(ctx context.Context, userID, albumID primitive.ObjectID) (*models.Album, error) {
	var album models.Album
	err := r.collection.FindOne(ctx, bson.M{"_id": albumID, "user_id": userID}).Decode(&album)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", translate(err))
	}
	return &album, nil
}

// GetAlbumsByUser lists a user's albums, newest first.
func (r *AlbumRepository) GetAlbumsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Album, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("userID", userID.Hex()).Error("Failed to fetch albums")
		return nil, fmt.Errorf("failed to get albums: %w", err)
	}
	defer cursor.Close(ctx)

	albums := []models.Album{}
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("failed to decode albums: %w", err)
	}
	return albums, nil
}

// SetCoverIfUnset writes imageURL as the cover only when the album has none yet.
// It reports whether the cover was written.
func (r *AlbumRepository) SetCoverIfUnset(ctx context.Context, albumID primitive.ObjectID, imageURL string) (bool, error) {
	filter := bson.M{
		"_id":         albumID,
		"cover_image": bson.M{"$in": bson.A{nil, ""}},
	}
	update := bson.M{"$set": bson.M{"cover_image": imageURL}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Log.WithError(err).WithField("albumID", albumID.Hex()).Error("Failed to set album cover")
		return false, fmt.Errorf("failed to set album cover: %w", err)
	}

	if result.ModifiedCount == 1 {
		logger.Log.WithField("albumID", albumID.Hex()).Info("Album cover set")
	}
	return result.ModifiedCount == 1, nil
}
