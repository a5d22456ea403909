package services

import (
	"context"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The store interfaces below are implemented by the MongoDB repositories.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type AlbumStore interface {
	CreateAlbum(ctx context.Context, album *models.Album) (*models.Album, error)
	GetAlbumByID(ctx context.Context, userID, albumID primitive.ObjectID) (*models.Album, error)
	GetAlbumsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Album, error)
	SetCoverIfUnset(ctx context.Context, albumID primitive.ObjectID, imageURL string) (bool, error)
}

type PhotoStore interface {
	CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error)
	GetPhotosByAlbum(ctx context.Context, userID, albumID primitive.ObjectID) ([]models.Photo, error)
}

type GuestStore interface {
	CreateGuest(ctx context.Context, guest *models.Guest) (*models.Guest, error)
	GetGuestsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Guest, error)
	GetGuestByID(ctx context.Context, userID, guestID primitive.ObjectID) (*models.Guest, error)
	UpdateGuest(ctx context.Context, userID, guestID primitive.ObjectID, updates map[string]interface{}) (*models.Guest, error)
}

type TimelineStore interface {
	CreateEvent(ctx context.Context, event *models.TimelineEvent) (*models.TimelineEvent, error)
	GetEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TimelineEvent, error)
}

type HoneymoonStore interface {
	CreateHoneymoon(ctx context.Context, h *models.Honeymoon) (*models.Honeymoon, error)
	GetHoneymoonsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Honeymoon, error)
}

// ImageUploader is satisfied by *storage.Uploader.
type ImageUploader interface {
	Accept(ctx context.Context, up storage.Upload) (string, error)
	Discard(ctx context.Context, ref string) error
}
