package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no document matches the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate key")
)

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

// now matches the millisecond precision BSON dates are stored with.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// insertedObjectID reads back the _id the driver generated for an insert.
func insertedObjectID(result *mongo.InsertOneResult) (primitive.ObjectID, error) {
	if result != nil {
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			return id, nil
		}
	}
	logger.Log.Error("Failed to cast inserted ID to ObjectID")
	return primitive.NilObjectID, fmt.Errorf("failed to cast inserted ID")
}
