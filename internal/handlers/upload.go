package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/storage"
)

// imageField is the multipart field carrying the uploaded file.
const imageField = "image"

// multipartOverhead is the room left for form fields and boundaries on top of the file limit.
const multipartOverhead = 1 << 20

// multipartMemory is how much of a form is held in memory before spilling to temp files.
const multipartMemory = 8 << 20

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

// parseForm reads a multipart body capped at maxUpload plus overhead.
func parseForm(w http.ResponseWriter, r *http.Request, maxUpload int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload+multipartOverhead)
	return r.ParseMultipartForm(multipartMemory)
}

// formUpload returns the image part, or nil when the request has none.
// The caller closes the returned file via cleanup.
func formUpload(r *http.Request) (*storage.Upload, func(), error) {
	file, header, err := r.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}

	up := &storage.Upload{
		File:     file,
		Filename: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	}
	return up, func() { file.Close() }, nil
}

func isTooLarge(err error) bool {
	var maxBytes *http.MaxBytesError
	return errors.As(err, &maxBytes)
}
