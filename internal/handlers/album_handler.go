package handlers

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type AlbumHandler struct {
	Service *services.AlbumService
}

func NewAlbumHandler(service *services.AlbumService) *AlbumHandler {
	return &AlbumHandler{Service: service}
}

// CreateAlbumHandler handles POST /api/albums.
func (h *AlbumHandler) CreateAlbumHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	var in services.AlbumInput
	if !decodeJSON(w, r, &in) {
		return
	}

	album, err := h.Service.CreateAlbum(r.Context(), user.ID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":  user.ID.Hex(),
		"albumID": album.ID.Hex(),
	}).Info("Album created")
	writeJSON(w, http.StatusCreated, album)
}

// GetAlbumsHandler handles GET /api/albums.
func (h *AlbumHandler) GetAlbumsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	albums, err := h.Service.ListAlbums(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, albums)
}
