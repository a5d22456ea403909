package handlers

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type GuestHandler struct {
	Service *services.GuestService
}

func NewGuestHandler(service *services.GuestService) *GuestHandler {
	return &GuestHandler{Service: service}
}

// CreateGuestHandler handles POST /api/guests.
func (h *GuestHandler) CreateGuestHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	var in services.GuestInput
	if !decodeJSON(w, r, &in) {
		return
	}

	guest, err := h.Service.CreateGuest(r.Context(), user.ID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":  user.ID.Hex(),
		"guestID": guest.ID.Hex(),
	}).Info("Guest added")
	writeJSON(w, http.StatusCreated, guest)
}

// GetGuestsHandler handles GET /api/guests.
func (h *GuestHandler) GetGuestsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	guests, err := h.Service.ListGuests(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

// UpdateGuestHandler handles PUT /api/guests/{id}. Only fields present in
// the body are changed.
func (h *GuestHandler) UpdateGuestHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	var upd models.GuestUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}

	guestID := mux.Vars(r)["id"]
	guest, err := h.Service.UpdateGuest(r.Context(), user.ID, guestID, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":  user.ID.Hex(),
		"guestID": guestID,
	}).Info("Guest updated")
	writeJSON(w, http.StatusOK, guest)
}
