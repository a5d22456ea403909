package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxUploadSize is 5 MiB.
	DefaultMaxUploadSize int64 = 5 * 1024 * 1024
	// URLPrefix is prepended to every stored filename to form its reference.
	URLPrefix = "/uploads/"
)

var (
	ErrUnsupportedMediaType = errors.New("only image files are allowed")
	ErrPayloadTooLarge      = errors.New("file exceeds the upload size limit")
)

// ContentStore persists uploaded bytes and serves them back by name.
// ServeHTTP receives requests with URLPrefix already stripped.
type ContentStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	http.Handler
}

// Upload is a single file taken from a multipart request.
type Upload struct {
	File     io.Reader
	Filename string
	MIMEType string
	Size     int64
}

// Uploader validates image uploads and writes them to a ContentStore.
type Uploader struct {
	store   ContentStore
	maxSize int64
}

func NewUploader(store ContentStore, maxSize int64) *Uploader {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	return &Uploader{store: store, maxSize: maxSize}
}

// MaxSize is the largest accepted file in bytes.
func (u *Uploader) MaxSize() int64 {
	return u.maxSize
}

// Accept checks the declared MIME type and size, stores the file under a
// unique name and returns its reference, e.g. "/uploads/<uuid>-photo.png".
func (u *Uploader) Accept(ctx context.Context, up Upload) (string, error) {
	if !strings.HasPrefix(up.MIMEType, "image/") {
		return "", ErrUnsupportedMediaType
	}
	if up.Size > u.maxSize {
		return "", ErrPayloadTooLarge
	}

	name := uuid.NewString() + "-" + sanitizeFilename(up.Filename)
	if err := u.store.Save(ctx, name, up.File, up.Size, up.MIMEType); err != nil {
		logger.Log.WithError(err).WithField("file", name).Error("Failed to store upload")
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"file": name,
		"size": up.Size,
	}).Info("Upload stored")
	return URLPrefix + name, nil
}

// Discard removes the file behind a reference returned by Accept.
func (u *Uploader) Discard(ctx context.Context, ref string) error {
	name := strings.TrimPrefix(ref, URLPrefix)
	if name == "" || name == "." || name == ".." || name == ref || strings.Contains(name, "/") {
		return fmt.Errorf("invalid upload reference %q", ref)
	}
	return u.store.Delete(ctx, name)
}

// Handler serves stored files under URLPrefix.
func (u *Uploader) Handler() http.Handler {
	return http.StripPrefix(URLPrefix, u.store)
}

// sanitizeFilename keeps the base name and replaces anything outside
// [A-Za-z0-9._-] so the reference is a safe single path segment.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if clean == "" || clean == "." || clean == ".." || clean == "_" {
		return "upload"
	}
	return clean
}
