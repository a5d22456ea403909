package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RSVP statuses a guest can be in.
const (
	RSVPConfirmed = "confirmed"
	RSVPPending   = "pending"
	RSVPDeclined  = "declined"
)

type Guest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Status    string             `bson:"status" json:"status"`
	PlusOne   bool               `bson:"plus_one" json:"plusOne"`
	Table     *int               `bson:"table,omitempty" json:"table,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// GuestUpdate carries the fields a PUT may change. Nil fields are left alone.
type GuestUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Status  *string `json:"status"`
	PlusOne *bool   `json:"plusOne"`
	Table   *int    `json:"table"`
}
