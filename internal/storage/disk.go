package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskStore writes uploads to a directory on the local filesystem.
type DiskStore struct {
	root string
	fs   http.Handler
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{
		root: root,
		fs:   http.FileServer(http.Dir(root)),
	}
}

// Save creates the root if needed and writes the file. A partial file is removed on error.
func (d *DiskStore) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("failed to create upload folder: %w", err)
	}

	dst := filepath.Join(d.root, name)
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Delete removes a stored file. A missing file is not an error.
func (d *DiskStore) Delete(_ context.Context, name string) error {
	if err := os.Remove(filepath.Join(d.root, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// ServeHTTP serves single files only. Directory requests get a 404 so the
// upload root can never be listed.
func (d *DiskStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}
	if info, err := os.Stat(filepath.Join(d.root, filepath.FromSlash(name))); err == nil && info.IsDir() {
		http.NotFound(w, r)
		return
	}
	d.fs.ServeHTTP(w, r)
}
