// Package seed loads demo data from a YAML file and writes it through the
// services, so the same validation applies as for API requests.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Dias221467/wedding-snap-story/internal/services"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"
)

type Fixtures struct {
	Couple    Couple      `yaml:"couple"`
	Albums    []Album     `yaml:"albums"`
	Guests    []Guest     `yaml:"guests"`
	Timeline  []Event     `yaml:"timeline"`
	Honeymoon []Honeymoon `yaml:"honeymoon"`
}

type Couple struct {
	FirstName   string `yaml:"firstName"`
	LastName    string `yaml:"lastName"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	WeddingDate string `yaml:"weddingDate"`
}

type Album struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Guest struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Status  string `yaml:"status"`
	PlusOne bool   `yaml:"plusOne"`
	Table   *int   `yaml:"table"`
}

type Event struct {
	Time        string `yaml:"time"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	Category    string `yaml:"category"`
}

type Honeymoon struct {
	Destination string `yaml:"destination"`
	StartDate   string `yaml:"startDate"`
	EndDate     string `yaml:"endDate"`
	Description string `yaml:"description"`
}

// Load reads fixtures from a YAML file.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if f.Couple.Email == "" {
		return nil, errors.New("fixtures: couple.email is required")
	}
	return &f, nil
}

// Report counts what Apply created.
type Report struct {
	UserID     primitive.ObjectID
	Token      string
	Existing   bool
	Albums     int
	Guests     int
	Events     int
	Honeymoons int
}

type Seeder struct {
	Auth      *services.AuthService
	Albums    *services.AlbumService
	Guests    *services.GuestService
	Timeline  *services.TimelineService
	Honeymoon *services.HoneymoonService
}

// Apply registers the demo couple and creates its records. When the couple
// already exists it only logs in, so running it twice does not duplicate data.
func (s *Seeder) Apply(ctx context.Context, f *Fixtures) (*Report, error) {
	result, err := s.Auth.Register(ctx, services.RegisterInput{
		FirstName:   f.Couple.FirstName,
		LastName:    f.Couple.LastName,
		Email:       f.Couple.Email,
		Password:    f.Couple.Password,
		WeddingDate: f.Couple.WeddingDate,
	})
	if errors.Is(err, services.ErrConflict) {
		result, err = s.Auth.Login(ctx, f.Couple.Email, f.Couple.Password)
		if err != nil {
			return nil, fmt.Errorf("demo couple exists but login failed: %w", err)
		}
		logger.Log.WithField("email", f.Couple.Email).Info("Demo couple already seeded")
		return &Report{UserID: result.User.ID, Token: result.Token, Existing: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register demo couple: %w", err)
	}

	userID := result.User.ID
	report := &Report{UserID: userID, Token: result.Token}

	for _, a := range f.Albums {
		if _, err := s.Albums.CreateAlbum(ctx, userID, services.AlbumInput{Title: a.Title, Description: a.Description}); err != nil {
			return report, fmt.Errorf("album %q: %w", a.Title, err)
		}
		report.Albums++
	}

	for _, g := range f.Guests {
		in := services.GuestInput{Name: g.Name, Email: g.Email, Status: g.Status, PlusOne: g.PlusOne, Table: g.Table}
		if _, err := s.Guests.CreateGuest(ctx, userID, in); err != nil {
			return report, fmt.Errorf("guest %q: %w", g.Name, err)
		}
		report.Guests++
	}

	for _, e := range f.Timeline {
		in := services.TimelineInput{Time: e.Time, Title: e.Title, Description: e.Description, Location: e.Location, Category: e.Category}
		if _, err := s.Timeline.CreateEvent(ctx, userID, in); err != nil {
			return report, fmt.Errorf("timeline event %q: %w", e.Title, err)
		}
		report.Events++
	}

	for _, h := range f.Honeymoon {
		in := services.HoneymoonInput{Destination: h.Destination, StartDate: h.StartDate, EndDate: h.EndDate, Description: h.Description}
		if _, err := s.Honeymoon.CreateHoneymoon(ctx, userID, in, nil); err != nil {
			return report, fmt.Errorf("honeymoon %q: %w", h.Destination, err)
		}
		report.Honeymoons++
	}

	logger.Log.WithFields(logrus.Fields{
		"userID":     userID.Hex(),
		"albums":     report.Albums,
		"guests":     report.Guests,
		"events":     report.Events,
		"honeymoons": report.Honeymoons,
	}).Info("Demo data seeded")
	return report, nil
}
