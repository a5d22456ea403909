package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlbumInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type AlbumService struct {
	repo AlbumStore
}

func NewAlbumService(repo AlbumStore) *AlbumService {
	return &AlbumService{repo: repo}
}

func (s *AlbumService) CreateAlbum(ctx context.Context, userID primitive.ObjectID, in AlbumInput) (*models.Album, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	album, err := s.repo.CreateAlbum(ctx, &models.Album{
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}
	return album, nil
}

// ListAlbums returns the caller's albums, newest first.
func (s *AlbumService) ListAlbums(ctx context.Context, userID primitive.ObjectID) ([]models.Album, error) {
	albums, err := s.repo.GetAlbumsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}
