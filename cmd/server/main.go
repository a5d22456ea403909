package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/wedding-snap-story/internal/config"
	"github.com/Dias221467/wedding-snap-story/internal/database"
	"github.com/Dias221467/wedding-snap-story/internal/handlers"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"github.com/Dias221467/wedding-snap-story/internal/routes"
	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	db, err := database.ConnectDB(cfg)
	if err != nil {
		logger.Log.Fatalf("Database connection error: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		logger.Log.Fatalf("Failed to create indexes: %v", err)
	}
	store, err := newContentStore(ctx, cfg)
	cancel()
	if err != nil {
		logger.Log.Fatalf("Upload storage error: %v", err)
	}
	uploader := storage.NewUploader(store, cfg.MaxUploadSize)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)
	honeymoonRepo := repository.NewHoneymoonRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry, cfg.BcryptCost)
	albumService := services.NewAlbumService(albumRepo)
	photoService := services.NewPhotoService(photoRepo, albumRepo, uploader)
	guestService := services.NewGuestService(guestRepo)
	timelineService := services.NewTimelineService(timelineRepo)
	honeymoonService := services.NewHoneymoonService(honeymoonRepo, uploader)

	// --- Handlers ---
	router := routes.NewRouter(routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Albums:    handlers.NewAlbumHandler(albumService),
		Photos:    handlers.NewPhotoHandler(photoService, uploader.MaxSize()),
		Guests:    handlers.NewGuestHandler(guestService),
		Timeline:  handlers.NewTimelineHandler(timelineService),
		Honeymoon: handlers.NewHoneymoonHandler(honeymoonService, uploader.MaxSize()),
		Uploads:   uploader.Handler(),
	}, authService, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
}

func newContentStore(ctx context.Context, cfg *config.Config) (storage.ContentStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDisk, "":
		logger.Log.WithField("dir", cfg.UploadDir).Info("Storing uploads on disk")
		return storage.NewDiskStore(cfg.UploadDir), nil
	case config.StorageMinIO:
		logger.Log.WithField("bucket", cfg.MinIO.Bucket).Info("Storing uploads in MinIO")
		return storage.NewMinIOStore(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
