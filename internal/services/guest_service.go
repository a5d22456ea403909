package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GuestInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=confirmed pending declined"`
	PlusOne bool   `json:"plusOne"`
	Table   *int   `json:"table" validate:"omitempty,min=0"`
}

type GuestService struct {
	repo GuestStore
}

func NewGuestService(repo GuestStore) *GuestService {
	return &GuestService{repo: repo}
}

// CreateGuest adds a guest. Status defaults to pending.
func (s *GuestService) CreateGuest(ctx context.Context, userID primitive.ObjectID, in GuestInput) (*models.Guest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = models.RSVPPending
	}

	guest, err := s.repo.CreateGuest(ctx, &models.Guest{
		Name:    in.Name,
		Email:   in.Email,
		Status:  in.Status,
		PlusOne: in.PlusOne,
		Table:   in.Table,
		UserID:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

// ListGuests returns the caller's guests ordered by name.
func (s *GuestService) ListGuests(ctx context.Context, userID primitive.ObjectID) ([]models.Guest, error) {
	guests, err := s.repo.GetGuestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// UpdateGuest changes the given fields of a guest owned by userID. A malformed
// id, a missing guest and another user's guest all return the same NotFoundError.
func (s *GuestService) UpdateGuest(ctx context.Context, userID primitive.ObjectID, guestIDHex string, upd models.GuestUpdate) (*models.Guest, error) {
	guestID, err := primitive.ObjectIDFromHex(guestIDHex)
	if err != nil {
		return nil, &NotFoundError{Resource: "guest"}
	}

	updates, err := guestUpdates(upd)
	if err != nil {
		return nil, err
	}

	var guest *models.Guest
	if len(updates) == 0 {
		guest, err = s.repo.GetGuestByID(ctx, userID, guestID)
	} else {
		guest, err = s.repo.UpdateGuest(ctx, userID, guestID, updates)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "guest"}
		}
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	return guest, nil
}

func guestUpdates(upd models.GuestUpdate) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Message: "is required"}
		}
		updates["name"] = name
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if email == "" {
			return nil, &ValidationError{Field: "email", Message: "is required"}
		}
		updates["email"] = email
	}
	if upd.Status != nil {
		switch *upd.Status {
		case models.RSVPConfirmed, models.RSVPPending, models.RSVPDeclined:
			updates["status"] = *upd.Status
		default:
			return nil, &ValidationError{Field: "status", Message: "must be one of: confirmed, pending, declined"}
		}
	}
	if upd.PlusOne != nil {
		updates["plus_one"] = *upd.PlusOne
	}
	if upd.Table != nil {
		if *upd.Table < 0 {
			return nil, &ValidationError{Field: "table", Message: "must be at least 0"}
		}
		updates["table"] = *upd.Table
	}

	return updates, nil
}
