package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type authFunc func(ctx context.Context, header string) (*models.User, error)

func (f authFunc) Authenticate(ctx context.Context, header string) (*models.User, error) {
	return f(ctx, header)
}

func TestAuthMiddlewarePassesUser(t *testing.T) {
	want := &models.User{ID: primitive.NewObjectID(), Email: "sofia@example.com"}
	auth := authFunc(func(_ context.Context, header string) (*models.User, error) {
		if header != "Bearer good" {
			return nil, errors.New("bad token")
		}
		return want, nil
	})

	var got *models.User
	h := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/albums", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	auth := authFunc(func(context.Context, string) (*models.User, error) {
		return nil, errors.New("no token")
	})
	called := false
	h := AuthMiddleware(auth)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/guests", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Please authenticate."}`, rec.Body.String())
}

func TestGetUserFromContextEmpty(t *testing.T) {
	assert.Nil(t, GetUserFromContext(context.Background()))
}

func TestLoggingMiddlewareKeepsStatus(t *testing.T) {
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
