package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a couple's account in Wedding Snap Story.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"first_name" json:"firstName"`
	LastName       string             `bson:"last_name" json:"lastName"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	WeddingDate    time.Time          `bson:"wedding_date" json:"weddingDate"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}

// UserSummary is the redacted view of a user returned by register and login.
type UserSummary struct {
	ID          primitive.ObjectID `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	WeddingDate time.Time          `json:"weddingDate"`
}

// Summary strips the password hash and timestamps.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		WeddingDate: u.WeddingDate,
	}
}
