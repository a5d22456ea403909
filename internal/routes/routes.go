package routes

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/handlers"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/Dias221467/wedding-snap-story/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Albums    *handlers.AlbumHandler
	Photos    *handlers.PhotoHandler
	Guests    *handlers.GuestHandler
	Timeline  *handlers.TimelineHandler
	Honeymoon *handlers.HoneymoonHandler
	Uploads   http.Handler
}

// NewRouter wires the API. Register and login are public; every other /api
// route requires a bearer token.
func NewRouter(h Handlers, auth middleware.Authenticator, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", h.Auth.RegisterHandler).Methods("POST")
	api.HandleFunc("/login", h.Auth.LoginHandler).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(auth))

	protected.HandleFunc("/albums", h.Albums.CreateAlbumHandler).Methods("POST")
	protected.HandleFunc("/albums", h.Albums.GetAlbumsHandler).Methods("GET")

	protected.HandleFunc("/photos", h.Photos.CreatePhotoHandler).Methods("POST")
	protected.HandleFunc("/photos/{albumId}", h.Photos.GetPhotosHandler).Methods("GET")

	protected.HandleFunc("/guests", h.Guests.CreateGuestHandler).Methods("POST")
	protected.HandleFunc("/guests", h.Guests.GetGuestsHandler).Methods("GET")
	protected.HandleFunc("/guests/{id}", h.Guests.UpdateGuestHandler).Methods("PUT")

	protected.HandleFunc("/timeline", h.Timeline.CreateEventHandler).Methods("POST")
	protected.HandleFunc("/timeline", h.Timeline.GetEventsHandler).Methods("GET")

	protected.HandleFunc("/honeymoon", h.Honeymoon.CreateHoneymoonHandler).Methods("POST")
	protected.HandleFunc("/honeymoon", h.Honeymoon.GetHoneymoonsHandler).Methods("GET")

	if h.Uploads != nil {
		router.PathPrefix(storage.URLPrefix).Handler(h.Uploads).Methods("GET", "HEAD")
	}

	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
