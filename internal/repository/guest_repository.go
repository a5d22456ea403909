package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GuestRepository struct {
	collection *mongo.Collection
}

func NewGuestRepository(db *mongo.Database) *GuestRepository {
	return &GuestRepository{collection: db.Collection("guests")}
}

func (r *GuestRepository) CreateGuest(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	guest.CreatedAt = now()

	result, err := r.collection.InsertOne(ctx, guest)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert guest")
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	if guest.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}
	return guest, nil
}

// GetGuestsByUser lists a user's guests by name ascending.
func (r *GuestRepository) GetGuestsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Guest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("userID", userID.Hex()).Error("Failed to fetch guests")
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer cursor.Close(ctx)

	guests := []models.Guest{}
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, fmt.Errorf("failed to decode guests: %w", err)
	}
	return guests, nil
}

// GetGuestByID returns the guest only if it belongs to userID.
func (r *GuestRepository) GetGuestByID(ctx context.Context, userID, guestID primitive.ObjectID) (*models.Guest, error) {
	var guest models.Guest
	err := r.collection.FindOne(ctx, bson.M{"_id": guestID, "user_id": userID}).Decode(&guest)
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", translate(err))
	}
	return &guest, nil
}

// UpdateGuest applies updates to the guest matched by id and owner and returns the new document.
func (r *GuestRepository) UpdateGuest(ctx context.Context, userID, guestID primitive.ObjectID, updates map[string]interface{}) (*models.Guest, error) {
	filter := bson.M{"_id": guestID, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var guest models.Guest
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).Decode(&guest)
	if err != nil {
		err = translate(err)
		if !errors.Is(err, ErrNotFound) {
			logger.Log.WithError(err).WithFields(logrus.Fields{
				"userID":  userID.Hex(),
				"guestID": guestID.Hex(),
			}).Error("Failed to update guest")
		}
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	logger.Log.WithField("guestID", guestID.Hex()).Info("Guest updated successfully")
	return &guest, nil
}
