package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Dias221467/wedding-snap-story/internal/config"
	"github.com/Dias221467/wedding-snap-story/internal/database"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"github.com/Dias221467/wedding-snap-story/internal/seed"
	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/internal/storage"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/spf13/cobra"
)

var fixturesPath string

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data into the Wedding Snap Story database",
	Long: `Registers the demo couple from the fixtures file and creates its albums,
guests, timeline and honeymoon entries. If the couple already exists nothing
is created.

Examples:
  seed
  seed --fixtures fixtures/demo.yaml`,
	RunE: runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&fixturesPath, "fixtures", "f", "fixtures/demo.yaml", "path to the YAML fixtures file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadConfig()
	logger.InitLogger(cfg.LogLevel)

	fixtures, err := seed.Load(fixturesPath)
	if err != nil {
		return err
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	// Fixtures carry no images, so the uploader is never reached.
	uploader := storage.NewUploader(storage.NewDiskStore(cfg.UploadDir), cfg.MaxUploadSize)
	seeder := &seed.Seeder{
		Auth:      services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.TokenExpiry, cfg.BcryptCost),
		Albums:    services.NewAlbumService(repository.NewAlbumRepository(db)),
		Guests:    services.NewGuestService(repository.NewGuestRepository(db)),
		Timeline:  services.NewTimelineService(repository.NewTimelineRepository(db)),
		Honeymoon: services.NewHoneymoonService(repository.NewHoneymoonRepository(db), uploader),
	}

	report, err := seeder.Apply(ctx, fixtures)
	if err != nil {
		return err
	}

	if report.Existing {
		fmt.Fprintf(cmd.OutOrStdout(), "Demo couple %s already present (user %s)\n", fixtures.Couple.Email, report.UserID.Hex())
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded user %s: %d albums, %d guests, %d timeline events, %d honeymoon entries\n",
		report.UserID.Hex(), report.Albums, report.Guests, report.Events, report.Honeymoons)
	fmt.Fprintf(cmd.OutOrStdout(), "Token: %s\n", report.Token)
	return nil
}
