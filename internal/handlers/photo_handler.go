package handlers

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type PhotoHandler struct {
	Service       *services.PhotoService
	MaxUploadSize int64
}

func NewPhotoHandler(service *services.PhotoService, maxUploadSize int64) *PhotoHandler {
	return &PhotoHandler{Service: service, MaxUploadSize: maxUploadSize}
}

// CreatePhotoHandler handles POST /api/photos. The body is multipart with
// the file in the "image" field.
func (h *PhotoHandler) CreatePhotoHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	if !isMultipart(r) {
		writeError(w, r, &services.ValidationError{Field: imageField, Message: "is required"})
		return
	}
	if err := parseForm(w, r, h.MaxUploadSize); err != nil {
		logger.Log.WithError(err).Warn("Failed to parse photo upload")
		if isTooLarge(err) {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	upload, cleanup, err := formUpload(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer cleanup()

	in := services.PhotoInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		AlbumID:     r.FormValue("albumId"),
		GuestID:     r.FormValue("guestId"),
	}

	photo, err := h.Service.CreatePhoto(r.Context(), user.ID, in, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":  user.ID.Hex(),
		"albumID": photo.AlbumID.Hex(),
		"photoID": photo.ID.Hex(),
	}).Info("Photo uploaded")
	writeJSON(w, http.StatusCreated, photo)
}

// GetPhotosHandler handles GET /api/photos/{albumId}.
func (h *PhotoHandler) GetPhotosHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	photos, err := h.Service.ListPhotos(r.Context(), user.ID, mux.Vars(r)["albumId"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, photos)
}
