package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Photo struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title       string              `bson:"title,omitempty" json:"title,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string              `bson:"image_url" json:"imageUrl"`
	AlbumID     primitive.ObjectID  `bson:"album_id" json:"albumId"`
	UserID      primitive.ObjectID  `bson:"user_id" json:"userId"`
	GuestID     *primitive.ObjectID `bson:"guest_id,omitempty" json:"guestId,omitempty"` // contributing guest, if any
	Likes       int                 `bson:"likes" json:"likes"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
}
