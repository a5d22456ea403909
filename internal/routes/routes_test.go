package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dias221467/wedding-snap-story/internal/handlers"
	"github.com/Dias221467/wedding-snap-story/internal/mocks"
	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	handler http.Handler
	users   *mocks.UserStore
	albums  *mocks.AlbumStore
	root    string
}

func newTestServer(t *testing.T) *testServer {
	ts := &testServer{
		users:  new(mocks.UserStore),
		albums: new(mocks.AlbumStore),
		root:   filepath.Join(t.TempDir(), "uploads"),
	}
	uploader := storage.NewUploader(storage.NewDiskStore(ts.root), storage.DefaultMaxUploadSize)
	auth := services.NewAuthService(ts.users, "routes-secret", time.Hour, bcrypt.MinCost)

	ts.handler = NewRouter(Handlers{
		Auth:      handlers.NewAuthHandler(auth),
		Albums:    handlers.NewAlbumHandler(services.NewAlbumService(ts.albums)),
		Photos:    handlers.NewPhotoHandler(services.NewPhotoService(new(mocks.PhotoStore), ts.albums, uploader), uploader.MaxSize()),
		Guests:    handlers.NewGuestHandler(services.NewGuestService(new(mocks.GuestStore))),
		Timeline:  handlers.NewTimelineHandler(services.NewTimelineService(new(mocks.TimelineStore))),
		Honeymoon: handlers.NewHoneymoonHandler(services.NewHoneymoonService(new(mocks.HoneymoonStore), uploader), uploader.MaxSize()),
		Uploads:   uploader.Handler(),
	}, auth, []string{"http://localhost:3000"})
	return ts
}

func (ts *testServer) do(r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, r)
	return rec
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/api/albums", "/api/guests", "/api/timeline", "/api/honeymoon", "/api/photos/" + primitive.NewObjectID().Hex()} {
		rec := ts.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.JSONEq(t, `{"error":"Please authenticate."}`, rec.Body.String(), target)
	}
}

func TestMalformedBearerRejected(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/albums", nil)
	r.Header.Set("Authorization", "Token abc")
	rec := ts.do(r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Please authenticate."}`, rec.Body.String())
}

func TestRegisterThenListAlbums(t *testing.T) {
	ts := newTestServer(t)
	var created *models.User
	ts.users.On("GetUserByEmail", mock.Anything, "elena@example.com").Return(nil, repository.ErrNotFound)
	ts.users.On("CreateUser", mock.Anything, mock.Anything).Return(func(_ context.Context, u *models.User) *models.User {
		u.ID = primitive.NewObjectID()
		created = u
		return u
	}, nil)

	rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(
		`{"firstName":"Elena","lastName":"Conti","email":"elena@example.com","password":"pw","weddingDate":"2025-09-20"}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result services.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, created)

	ts.users.On("GetUserByID", mock.Anything, created.ID).Return(created, nil)
	ts.albums.On("GetAlbumsByUser", mock.Anything, created.ID).Return([]models.Album{{ID: primitive.NewObjectID(), Title: "Ceremony", UserID: created.ID}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/albums", nil)
	r.Header.Set("Authorization", "Bearer "+result.Token)
	rec = ts.do(r)

	require.Equal(t, http.StatusOK, rec.Code)
	var albums []models.Album
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &albums))
	require.Len(t, albums, 1)
	assert.Equal(t, "Ceremony", albums[0].Title)
}

func TestUploadsServedPublicly(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, os.MkdirAll(ts.root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ts.root, "abc-cake.png"), []byte("cake"), 0o644))

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/uploads/abc-cake.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cake", rec.Body.String())

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadsDirectoryNotListed(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, os.MkdirAll(ts.root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ts.root, "abc-cake.png"), []byte("cake"), 0o644))

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/uploads/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "abc-cake.png")
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/albums"},
		{http.MethodPut, "/api/guests/" + primitive.NewObjectID().Hex()},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			// Browsers send the requested header names lowercased.
			r := httptest.NewRequest(http.MethodOptions, tc.path, nil)
			r.Header.Set("Origin", "http://localhost:3000")
			r.Header.Set("Access-Control-Request-Method", tc.method)
			r.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
			rec := ts.do(r)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), tc.method)
			assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "authorization")
		})
	}
}

func TestCORSPreflightUnknownOrigin(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest(http.MethodOptions, "/api/albums", nil)
	r.Header.Set("Origin", "http://evil.example")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := ts.do(r)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
