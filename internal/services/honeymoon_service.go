package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HoneymoonInput struct {
	Destination string `json:"destination" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	Description string `json:"description"`
}

type HoneymoonService struct {
	repo     HoneymoonStore
	uploader ImageUploader
}

func NewHoneymoonService(repo HoneymoonStore, uploader ImageUploader) *HoneymoonService {
	return &HoneymoonService{repo: repo, uploader: uploader}
}

// CreateHoneymoon records a trip leg. The image is optional.
func (s *HoneymoonService) CreateHoneymoon(ctx context.Context, userID primitive.ObjectID, in HoneymoonInput, upload *storage.Upload) (*models.Honeymoon, error) {
	in.Destination = strings.TrimSpace(in.Destination)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	start, err := parseDate("startDate", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &ValidationError{Field: "endDate", Message: "must not be before startDate"}
	}

	var imageURL string
	if upload != nil {
		if imageURL, err = s.uploader.Accept(ctx, *upload); err != nil {
			return nil, err
		}
	}

	h, err := s.repo.CreateHoneymoon(ctx, &models.Honeymoon{
		Destination: in.Destination,
		StartDate:   start,
		EndDate:     end,
		Description: in.Description,
		ImageURL:    imageURL,
		UserID:      userID,
	})
	if err != nil {
		if imageURL != "" {
			discardUpload(ctx, s.uploader, imageURL)
		}
		return nil, fmt.Errorf("failed to create honeymoon: %w", err)
	}
	return h, nil
}

// ListHoneymoons returns the caller's entries by start date ascending.
func (s *HoneymoonService) ListHoneymoons(ctx context.Context, userID primitive.ObjectID) ([]models.Honeymoon, error) {
	entries, err := s.repo.GetHoneymoonsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list honeymoons: %w", err)
	}
	return entries, nil
}
