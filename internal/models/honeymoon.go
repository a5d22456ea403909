package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Honeymoon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Destination string             `bson:"destination" json:"destination"`
	StartDate   time.Time          `bson:"start_date" json:"startDate"`
	EndDate     time.Time          `bson:"end_date" json:"endDate"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
