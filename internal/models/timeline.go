package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timeline categories.
const (
	CategoryCeremony    = "ceremony"
	CategoryReception   = "reception"
	CategoryPreparation = "preparation"
	CategoryOther       = "other"
)

type TimelineEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Time        string             `bson:"time" json:"time"` // free-text label, e.g. "2:00 PM"
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Category    string             `bson:"category" json:"category"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
