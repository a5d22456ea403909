package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotoInput holds the non-file form fields of POST /api/photos.
type PhotoInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AlbumID     string `json:"albumId" validate:"required"`
	GuestID     string `json:"guestId"`
}

type PhotoService struct {
	photos   PhotoStore
	albums   AlbumStore
	uploader ImageUploader
}

func NewPhotoService(photos PhotoStore, albums AlbumStore, uploader ImageUploader) *PhotoService {
	return &PhotoService{
		photos:   photos,
		albums:   albums,
		uploader: uploader,
	}
}

// CreatePhoto stores the image, records the photo and makes it the album
// cover if the album has none yet.
func (s *PhotoService) CreatePhoto(ctx context.Context, userID primitive.ObjectID, in PhotoInput, upload *storage.Upload) (*models.Photo, error) {
	if upload == nil {
		return nil, &ValidationError{Field: "image", Message: "is required"}
	}
	in.AlbumID = strings.TrimSpace(in.AlbumID)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	albumID, err := primitive.ObjectIDFromHex(in.AlbumID)
	if err != nil {
		return nil, &ValidationError{Field: "albumId", Message: "is not valid"}
	}

	var guestID *primitive.ObjectID
	if g := strings.TrimSpace(in.GuestID); g != "" {
		id, err := primitive.ObjectIDFromHex(g)
		if err != nil {
			return nil, &ValidationError{Field: "guestId", Message: "is not valid"}
		}
		guestID = &id
	}

	// The album must be the caller's before anything is written.
	if _, err := s.albums.GetAlbumByID(ctx, userID, albumID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "album"}
		}
		return nil, fmt.Errorf("failed to load album: %w", err)
	}

	imageURL, err := s.uploader.Accept(ctx, *upload)
	if err != nil {
		return nil, err
	}

	photo, err := s.photos.CreatePhoto(ctx, &models.Photo{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    imageURL,
		AlbumID:     albumID,
		UserID:      userID,
		GuestID:     guestID,
	})
	if err != nil {
		discardUpload(ctx, s.uploader, imageURL)
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	// Best effort: the photo is already saved, so a failed cover write is only logged.
	if _, err := s.albums.SetCoverIfUnset(ctx, albumID, photo.ImageURL); err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"albumID": albumID.Hex(),
			"photoID": photo.ID.Hex(),
		}).Warn("Failed to set album cover")
	}

	return photo, nil
}

// discardUpload removes a stored file whose record could not be written.
// The caller's original error wins, so a failed removal is only logged.
func discardUpload(ctx context.Context, uploader ImageUploader, ref string) {
	if err := uploader.Discard(ctx, ref); err != nil {
		logger.Log.WithError(err).WithField("imageUrl", ref).Warn("Failed to discard orphaned upload")
	}
}

// ListPhotos returns the caller's photos in an album, newest first.
func (s *PhotoService) ListPhotos(ctx context.Context, userID primitive.ObjectID, albumIDHex string) ([]models.Photo, error) {
	albumID, err := primitive.ObjectIDFromHex(albumIDHex)
	if err != nil {
		return nil, &ValidationError{Field: "albumId", Message: "is not valid"}
	}

	photos, err := s.photos.GetPhotosByAlbum(ctx, userID, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}
