package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TimelineInput struct {
	Time        string `json:"time" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category" validate:"omitempty,oneof=ceremony reception preparation other"`
}

type TimelineService struct {
	repo TimelineStore
}

func NewTimelineService(repo TimelineStore) *TimelineService {
	return &TimelineService{repo: repo}
}

// CreateEvent adds a timeline entry. Category defaults to other.
func (s *TimelineService) CreateEvent(ctx context.Context, userID primitive.ObjectID, in TimelineInput) (*models.TimelineEvent, error) {
	in.Time = strings.TrimSpace(in.Time)
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = models.CategoryOther
	}

	event, err := s.repo.CreateEvent(ctx, &models.TimelineEvent{
		Time:        in.Time,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Category:    in.Category,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}
	return event, nil
}

// ListEvents returns the caller's events ordered by the literal time label.
func (s *TimelineService) ListEvents(ctx context.Context, userID primitive.ObjectID) ([]models.TimelineEvent, error) {
	events, err := s.repo.GetEventsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	return events, nil
}
