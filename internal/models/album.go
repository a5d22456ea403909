package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Album struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"coverImage,omitempty"` // set once, by the first photo
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
