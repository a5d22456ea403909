package services

import (
	"context"
	"testing"

	"github.com/Dias221467/wedding-snap-story/internal/mocks"
	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](v T) *T { return &v }

func saveGuest(_ context.Context, g *models.Guest) *models.Guest {
	g.ID = primitive.NewObjectID()
	return g
}

func TestCreateGuestDefaults(t *testing.T) {
	repo := new(mocks.GuestStore)
	repo.On("CreateGuest", mock.Anything, mock.Anything).Return(saveGuest, nil)
	svc := NewGuestService(repo)
	owner := primitive.NewObjectID()

	guest, err := svc.CreateGuest(context.Background(), owner, GuestInput{Name: "Marco Verdi", Email: "marco@example.com"})

	require.NoError(t, err)
	assert.Equal(t, models.RSVPPending, guest.Status)
	assert.False(t, guest.PlusOne)
	assert.Nil(t, guest.Table)
	assert.Equal(t, owner, guest.UserID)
}

func TestCreateGuestMissingEmail(t *testing.T) {
	svc := NewGuestService(new(mocks.GuestStore))

	_, err := svc.CreateGuest(context.Background(), primitive.NewObjectID(), GuestInput{Name: "Marco"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestUpdateGuestPartial(t *testing.T) {
	repo := new(mocks.GuestStore)
	owner := primitive.NewObjectID()
	guestID := primitive.NewObjectID()
	want := map[string]interface{}{"status": models.RSVPConfirmed, "table": 4}
	repo.On("UpdateGuest", mock.Anything, owner, guestID, want).
		Return(&models.Guest{ID: guestID, UserID: owner, Status: models.RSVPConfirmed, Table: ptr(4)}, nil)
	svc := NewGuestService(repo)

	guest, err := svc.UpdateGuest(context.Background(), owner, guestID.Hex(), models.GuestUpdate{
		Status: ptr(models.RSVPConfirmed),
		Table:  ptr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, models.RSVPConfirmed, guest.Status)
	repo.AssertExpectations(t)
}

func TestUpdateGuestOfAnotherUser(t *testing.T) {
	repo := new(mocks.GuestStore)
	caller := primitive.NewObjectID()
	guestID := primitive.NewObjectID()
	repo.On("UpdateGuest", mock.Anything, caller, guestID, mock.Anything).Return(nil, repository.ErrNotFound)
	svc := NewGuestService(repo)

	_, err := svc.UpdateGuest(context.Background(), caller, guestID.Hex(), models.GuestUpdate{PlusOne: ptr(true)})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateGuestMalformedIDIsNotFound(t *testing.T) {
	repo := new(mocks.GuestStore)
	svc := NewGuestService(repo)

	_, err := svc.UpdateGuest(context.Background(), primitive.NewObjectID(), "12", models.GuestUpdate{PlusOne: ptr(true)})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "UpdateGuest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateGuestEmptyBodyReturnsCurrent(t *testing.T) {
	repo := new(mocks.GuestStore)
	owner := primitive.NewObjectID()
	guestID := primitive.NewObjectID()
	repo.On("GetGuestByID", mock.Anything, owner, guestID).Return(&models.Guest{ID: guestID, UserID: owner, Name: "Laura"}, nil)
	svc := NewGuestService(repo)

	guest, err := svc.UpdateGuest(context.Background(), owner, guestID.Hex(), models.GuestUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "Laura", guest.Name)
	repo.AssertNotCalled(t, "UpdateGuest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateGuestRejectsBadValues(t *testing.T) {
	svc := NewGuestService(new(mocks.GuestStore))
	id := primitive.NewObjectID().Hex()

	cases := map[string]models.GuestUpdate{
		"status": {Status: ptr("maybe")},
		"name":   {Name: ptr(" ")},
		"email":  {Email: ptr("")},
		"table":  {Table: ptr(-1)},
	}
	for field, upd := range cases {
		_, err := svc.UpdateGuest(context.Background(), primitive.NewObjectID(), id, upd)
		var verr *ValidationError
		if assert.ErrorAs(t, err, &verr, field) {
			assert.Equal(t, field, verr.Field)
		}
	}
}
