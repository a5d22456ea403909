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
)

// UserRepository is the credential store.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// CreateUser inserts a new user. A taken email yields ErrDuplicate.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		err = translate(err)
		if !errors.Is(err, ErrDuplicate) {
			logger.Log.WithError(err).Error("Failed to insert user into database")
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if user.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	logger.Log.WithField("userID", user.ID.Hex()).Info("User inserted successfully")
	return user, nil
}

// GetUserByEmail retrieves a user by exact email match.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", translate(err))
	}
	return &user, nil
}

// GetUserByID retrieves a user by their ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"userID": id.Hex(),
			"error":  err,
		}).Debug("Failed to find user by ID")
		return nil, fmt.Errorf("failed to find user by id: %w", translate(err))
	}
	return &user, nil
}
