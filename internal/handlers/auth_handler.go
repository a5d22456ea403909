package handlers

import (
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
)

// AuthHandler serves the public register and login endpoints.
type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// RegisterHandler handles POST /api/register.
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := h.Service.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithField("userID", result.User.ID.Hex()).Info("User registered")
	writeJSON(w, http.StatusCreated, result)
}

// LoginHandler handles POST /api/login.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &credentials) {
		return
	}

	result, err := h.Service.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Log.WithField("userID", result.User.ID.Hex()).Info("User logged in")
	writeJSON(w, http.StatusOK, result)
}
