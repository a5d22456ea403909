package handlers

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type TimelineHandler struct {
	Service *services.TimelineService
}

func NewTimelineHandler(service *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{Service: service}
}

func (h *TimelineHandler) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	var in services.TimelineInput
	if !decodeJSON(w, r, &in) {
		return
	}

	event, err := h.Service.CreateEvent(r.Context(), user.ID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":  user.ID.Hex(),
		"eventID": event.ID.Hex(),
	}).Info("Timeline event created")
	writeJSON(w, http.StatusCreated, event)
}

func (h *TimelineHandler) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, r, services.ErrUnauthenticated)
		return
	}

	events, err := h.Service.ListEvents(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
