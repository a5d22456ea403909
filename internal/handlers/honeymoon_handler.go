package handlers

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type HoneymoonHandler struct {
	Service       *services.HoneymoonService
	MaxUploadSize int64
}

func NewHoneymoonHandler(service *services.HoneymoonService, maxUploadSize int64) *HoneymoonHandler {
	return &HoneymoonHandler{Service: service, MaxUploadSize: maxUploadSize}
}

// CreateHoneymoonHandler handles POST /api/honeymoon. It takes either a JSON
// body or a multipart form with an optional "image" file.
func (h *HoneymoonHandler) CreateHoneymoonHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	var (
		in     services.HoneymoonInput
		upload *storage.Upload
	)
	if isMultipart(r) {
		if err := parseForm(w, r, h.MaxUploadSize); err != nil {
			logger.Log.WithError(err).Warn("Failed to parse honeymoon form")
			if isTooLarge(err) {
				writeError(w, r, err)
				return
			}
			writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		defer r.MultipartForm.RemoveAll()

		up, cleanup, err := formUpload(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		defer cleanup()
		upload = up

		in = services.HoneymoonInput{
			Destination: r.FormValue("destination"),
			StartDate:   r.FormValue("startDate"),
			EndDate:     r.FormValue("endDate"),
			Description: r.FormValue("description"),
		}
	} else if !decodeJSON(w, r, &in) {
		return
	}

	entry, err := h.Service.CreateHoneymoon(r.Context(), user.ID, in, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":      user.ID.Hex(),
		"honeymoonID": entry.ID.Hex(),
	}).Info("Honeymoon entry created")
	writeJSON(w, http.StatusCreated, entry)
}

func (h *HoneymoonHandler) GetHoneymoonsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	entries, err := h.Service.ListHoneymoons(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
