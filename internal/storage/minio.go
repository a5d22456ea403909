package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dias221467/wedding-snap-story/internal/config"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore keeps uploads in an S3-compatible bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore connects to the endpoint and creates the bucket if it does not exist.
func NewMinIOStore(ctx context.Context, cfg config.MinIOConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Log.WithField("bucket", cfg.Bucket).Info("MinIO bucket created")
	}

	return &MinIOStore{client: client, bucket: cfg.Bucket}, nil
}

func (m *MinIOStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return nil
}

// Delete removes an object. Removing a missing key succeeds.
func (m *MinIOStore) Delete(ctx context.Context, name string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object from MinIO: %w", err)
	}
	return nil
}

func (m *MinIOStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	obj, err := m.client.GetObject(r.Context(), m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		logger.Log.WithError(err).WithField("file", name).Error("Failed to fetch object")
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			http.NotFound(w, r)
			return
		}
		logger.Log.WithError(err).WithField("file", name).Error("Failed to stat object")
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	http.ServeContent(w, r, name, info.LastModified, obj)
}
