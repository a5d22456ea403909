package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticator resolves an Authorization header to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*models.User, error)
}

// WriteUnauthorized writes the 401 body existing clients read. Unlike every
// other error it carries the text under "error", not "message".
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": "Please authenticate."}); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the resolved user in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				logger.Log.WithError(err).WithField("path", r.URL.Path).Warn("Rejected unauthenticated request")
				WriteUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// GetUserFromContext returns the authenticated user, or nil outside AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// WithUser returns a copy of ctx carrying user, as AuthMiddleware would.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
