package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	jwtutil "github.com/Dias221467/wedding-snap-story/pkg/jwt"
	"github.com/Dias221467/wedding-snap-story/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const bearerPrefix = "Bearer "

// RegisterInput is the body of POST /api/register.
type RegisterInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	WeddingDate string `json:"weddingDate" validate:"required"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// AuthService registers users, checks credentials and verifies bearer tokens.
type AuthService struct {
	repo       UserStore
	secret     string
	expiry     time.Duration
	bcryptCost int
	dummyHash  []byte
}

func NewAuthService(repo UserStore, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("wedding-snap-story"), bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to prepare dummy password hash")
	}
	return &AuthService{
		repo:       repo,
		secret:     secret,
		expiry:     expiry,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

// Register creates a user and returns a fresh token. A taken email yields ErrConflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	weddingDate, err := parseDate("weddingDate", in.WeddingDate)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		logger.Log.WithField("email", in.Email).Warn("Email already in use")
		return nil, ErrConflict
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &ValidationError{Field: "password", Message: "must be at most 72 bytes"}
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &models.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		HashedPassword: string(hashed),
		WeddingDate:    weddingDate,
	})
	if err != nil {
		// Lost a race against a concurrent registration with the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Log.WithField("userID", user.ID.Hex()).Info("User registered successfully")
	return s.issue(user)
}

// Login checks the credentials. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// An unknown email costs one bcrypt comparison, same as a wrong password.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logger.Log.WithField("userID", user.ID.Hex()).Warn("Invalid credentials")
		return nil, ErrInvalidCredentials
	}

	logger.Log.WithField("userID", user.ID.Hex()).Info("User logged in successfully")
	return s.issue(user)
}

// Authenticate resolves an Authorization header value to the user it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*models.User, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrUnauthenticated
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := jwtutil.ValidateToken(token, s.secret)
	if err != nil {
		logger.Log.WithError(err).Debug("Rejected bearer token")
		return nil, ErrUnauthenticated
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve token user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := jwtutil.GenerateToken(user.ID.Hex(), s.secret, s.expiry)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.Summary()}, nil
}
