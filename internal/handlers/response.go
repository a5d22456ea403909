package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError maps service and storage errors onto status codes. Anything
// unrecognised is logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *services.ValidationError
		nferr    *services.NotFoundError
		maxBytes *http.MaxBytesError
	)

	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Field+" "+verr.Message)
	case errors.Is(err, services.ErrConflict):
		writeMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrUnauthenticated):
		middleware.WriteUnauthorized(w)
	case errors.As(err, &nferr):
		writeMessage(w, http.StatusNotFound, nferr.Error())
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, storage.ErrPayloadTooLarge), errors.As(err, &maxBytes):
		writeMessage(w, http.StatusRequestEntityTooLarge, storage.ErrPayloadTooLarge.Error())
	case errors.Is(err, storage.ErrUnsupportedMediaType):
		writeMessage(w, http.StatusUnsupportedMediaType, storage.ErrUnsupportedMediaType.Error())
	default:
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("Request failed")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

// decodeJSON reads a JSON body into v. Malformed bodies are a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.WithError(err).WithField("path", r.URL.Path).Warn("Invalid request payload")
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
