package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dias221467/wedding-snap-story/internal/mocks"
	"github.com/Dias221467/wedding-snap-story/internal/models"
	"github.com/Dias221467/wedding-snap-story/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestAuthService(repo *mocks.UserStore) *AuthService {
	return NewAuthService(repo, testSecret, 7*24*time.Hour, bcrypt.MinCost)
}

func validRegistration() RegisterInput {
	return RegisterInput{
		FirstName:   "Giulia",
		LastName:    "Rossi",
		Email:       "giulia@example.com",
		Password:    "s3cret-pass",
		WeddingDate: "2025-09-20",
	}
}

func storedUser(t *testing.T, email, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:             primitive.NewObjectID(),
		FirstName:      "Giulia",
		LastName:       "Rossi",
		Email:          email,
		HashedPassword: string(hash),
	}
}

func TestRegisterSuccess(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	id := primitive.NewObjectID()

	repo.On("GetUserByEmail", mock.Anything, "giulia@example.com").Return(nil, repository.ErrNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("s3cret-pass")) == nil &&
			u.WeddingDate.Equal(time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC))
	})).Return(func(_ context.Context, u *models.User) *models.User {
		u.ID = id
		return u
	}, nil)

	res, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, id, res.User.ID)
	assert.Equal(t, "giulia@example.com", res.User.Email)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)

	repo.On("GetUserByEmail", mock.Anything, "giulia@example.com").Return(storedUser(t, "giulia@example.com", "x"), nil)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, ErrConflict)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateKeyRace(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)

	repo.On("GetUserByEmail", mock.Anything, "giulia@example.com").Return(nil, repository.ErrNotFound)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicate)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterMissingField(t *testing.T) {
	svc := newTestAuthService(new(mocks.UserStore))
	in := validRegistration()
	in.LastName = "  "

	_, err := svc.Register(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "lastName", verr.Field)
}

func TestRegisterKeepsEmailVerbatim(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	in := validRegistration()
	in.Email = "Giulia@example.com "

	repo.On("GetUserByEmail", mock.Anything, "Giulia@example.com ").Return(nil, repository.ErrNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "Giulia@example.com "
	})).Return(func(_ context.Context, u *models.User) *models.User {
		u.ID = primitive.NewObjectID()
		return u
	}, nil)

	res, err := svc.Register(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Giulia@example.com ", res.User.Email)
	repo.AssertExpectations(t)
}

func TestRegisterBadWeddingDate(t *testing.T) {
	svc := newTestAuthService(new(mocks.UserStore))
	in := validRegistration()
	in.WeddingDate = "someday"

	_, err := svc.Register(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weddingDate", verr.Field)
}

func TestRegisterStoreFailure(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)

	repo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.Register(context.Background(), validRegistration())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestLoginSuccess(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	user := storedUser(t, "giulia@example.com", "s3cret-pass")

	repo.On("GetUserByEmail", mock.Anything, "giulia@example.com").Return(user, nil)

	res, err := svc.Login(context.Background(), "giulia@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.ID, res.User.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)

	repo.On("GetUserByEmail", mock.Anything, "giulia@example.com").Return(storedUser(t, "giulia@example.com", "right"), nil)
	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	_, wrongPassword := svc.Login(context.Background(), "giulia@example.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "right")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginUnknownEmailSpendsBcryptWork(t *testing.T) {
	repo := new(mocks.UserStore)
	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)
	svc := NewAuthService(repo, testSecret, time.Hour, bcrypt.MinCost+1)

	cost, err := bcrypt.Cost(svc.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost, "dummy hash must match the configured cost")

	_, err = svc.Login(context.Background(), "nobody@example.com", "right")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEmailIsMatchedVerbatim(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	repo.On("GetUserByEmail", mock.Anything, " giulia@example.com").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(context.Background(), " giulia@example.com", "right")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertCalled(t, "GetUserByEmail", mock.Anything, " giulia@example.com")
	repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, "giulia@example.com")
}

func TestAuthenticateRoundTrip(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	user := storedUser(t, "giulia@example.com", "s3cret-pass")

	repo.On("GetUserByEmail", mock.Anything, "giulia@example.com").Return(user, nil)
	repo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)

	res, err := svc.Login(context.Background(), "giulia@example.com", "s3cret-pass")
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), "Bearer "+res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticateExpiresAfterSevenDays(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	user := storedUser(t, "giulia@example.com", "pw")
	repo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)

	res, err := svc.issue(user)
	require.NoError(t, err)

	original := jwt.TimeFunc
	defer func() { jwt.TimeFunc = original }()

	jwt.TimeFunc = func() time.Time { return time.Now().Add(6*24*time.Hour + 23*time.Hour) }
	_, err = svc.Authenticate(context.Background(), "Bearer "+res.Token)
	assert.NoError(t, err, "token should still be valid just before seven days")

	jwt.TimeFunc = func() time.Time { return time.Now().Add(7*24*time.Hour + time.Minute) }
	_, err = svc.Authenticate(context.Background(), "Bearer "+res.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateRejects(t *testing.T) {
	repo := new(mocks.UserStore)
	svc := newTestAuthService(repo)
	gone := storedUser(t, "gone@example.com", "pw")
	repo.On("GetUserByID", mock.Anything, gone.ID).Return(nil, repository.ErrNotFound)

	goneToken, err := svc.issue(gone)
	require.NoError(t, err)
	foreign, err := NewAuthService(repo, "other-secret", time.Hour, bcrypt.MinCost).issue(gone)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":  "",
		"no bearer":       goneToken.Token,
		"basic auth":      "Basic Zm9vOmJhcg==",
		"empty token":     "Bearer ",
		"malformed":       "Bearer not-a-jwt",
		"wrong signature": "Bearer " + foreign.Token,
		"deleted user":    "Bearer " + goneToken.Token,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), header)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}
