// Package mocks holds testify mocks for the service store interfaces.
// Create* mocks accept either a record or a func(ctx, in) *record as the first return value.
package mocks

import (
	"context"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if fn, ok := args.Get(0).(func(context.Context, *models.User) *models.User); ok {
		return fn(ctx, user), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type AlbumStore struct {
	mock.Mock
}

func (m *AlbumStore) CreateAlbum(ctx context.Context, album *models.Album) (*models.Album, error) {
	args := m.Called(ctx, album)
	if fn, ok := args.Get(0).(func(context.Context, *models.Album) *models.Album); ok {
		return fn(ctx, album), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *AlbumStore) GetAlbumByID(ctx context.Context, userID, albumID primitive.ObjectID) (*models.Album, error) {
	args := m.Called(ctx, userID, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *AlbumStore) GetAlbumsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Album, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Album), args.Error(1)
}

func (m *AlbumStore) SetCoverIfUnset(ctx context.Context, albumID primitive.ObjectID, imageURL string) (bool, error) {
	args := m.Called(ctx, albumID, imageURL)
	return args.Bool(0), args.Error(1)
}

type PhotoStore struct {
	mock.Mock
}

func (m *PhotoStore) CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	args := m.Called(ctx, photo)
	if fn, ok := args.Get(0).(func(context.Context, *models.Photo) *models.Photo); ok {
		return fn(ctx, photo), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *PhotoStore) GetPhotosByAlbum(ctx context.Context, userID, albumID primitive.ObjectID) ([]models.Photo, error) {
	args := m.Called(ctx, userID, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

type GuestStore struct {
	mock.Mock
}

func (m *GuestStore) CreateGuest(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	args := m.Called(ctx, guest)
	if fn, ok := args.Get(0).(func(context.Context, *models.Guest) *models.Guest); ok {
		return fn(ctx, guest), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guest), args.Error(1)
}

func (m *GuestStore) GetGuestsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Guest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Guest), args.Error(1)
}

func (m *GuestStore) GetGuestByID(ctx context.Context, userID, guestID primitive.ObjectID) (*models.Guest, error) {
	args := m.Called(ctx, userID, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guest), args.Error(1)
}

func (m *GuestStore) UpdateGuest(ctx context.Context, userID, guestID primitive.ObjectID, updates map[string]interface{}) (*models.Guest, error) {
	args := m.Called(ctx, userID, guestID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guest), args.Error(1)
}

type TimelineStore struct {
	mock.Mock
}

func (m *TimelineStore) CreateEvent(ctx context.Context, event *models.TimelineEvent) (*models.TimelineEvent, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, *models.TimelineEvent) *models.TimelineEvent); ok {
		return fn(ctx, event), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimelineEvent), args.Error(1)
}

func (m *TimelineStore) GetEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TimelineEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimelineEvent), args.Error(1)
}

type HoneymoonStore struct {
	mock.Mock
}

func (m *HoneymoonStore) CreateHoneymoon(ctx context.Context, h *models.Honeymoon) (*models.Honeymoon, error) {
	args := m.Called(ctx, h)
	if fn, ok := args.Get(0).(func(context.Context, *models.Honeymoon) *models.Honeymoon); ok {
		return fn(ctx, h), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Honeymoon), args.Error(1)
}

func (m *HoneymoonStore) GetHoneymoonsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Honeymoon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Honeymoon), args.Error(1)
}

type Uploader struct {
	mock.Mock
}

func (m *Uploader) Accept(ctx context.Context, up storage.Upload) (string, error) {
	args := m.Called(ctx, up)
	return args.String(0), args.Error(1)
}

func (m *Uploader) Discard(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
