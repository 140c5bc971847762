package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo records what the service tried to insert.
type fakeUserRepo struct {
	created   []repository.UserFields
	createErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, fields repository.UserFields) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, fields)

	user := &models.User{ID: int64(len(f.created)), CreatedAt: time.Now().UTC()}
	if fields.Username != nil {
		user.Username = *fields.Username
	}
	if fields.Email != nil {
		user.Email = *fields.Email
	}
	if fields.PasswordHash != nil {
		user.PasswordHash = *fields.PasswordHash
	}
	return user, nil
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestUserService(repo repository.UserRepository) UserService {
	// Cost 4 is the bcrypt minimum and keeps the tests fast.
	return NewUserService(repo, config.AuthConfig{BcryptCost: bcrypt.MinCost}, newTestLogger())
}

func ptr(s string) *string { return &s }

func TestRegister_StoresBcryptHashNotPlaintext(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: ptr("neo"),
		Email:    ptr("neo@example.com"),
		Password: ptr("there-is-no-spoon"),
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	stored := *repo.created[0].PasswordHash
	assert.NotEqual(t, "there-is-no-spoon", stored)
	assert.True(t, strings.HasPrefix(stored, "$2"), "expected a bcrypt hash, got %q", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("there-is-no-spoon")))
	assert.Equal(t, "neo", user.Username)
}

func TestRegister_SaltsEachHash(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Username: ptr("a"), Email: ptr("a@x.io"), Password: ptr("same")})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), RegisterInput{Username: ptr("b"), Email: ptr("b@x.io"), Password: ptr("same")})
	require.NoError(t, err)

	assert.NotEqual(t, *repo.created[0].PasswordHash, *repo.created[1].PasswordHash)
}

func TestRegister_MissingPasswordPassesNull(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Username: ptr("neo"), Email: ptr("neo@example.com")})
	require.NoError(t, err)
	assert.Nil(t, repo.created[0].PasswordHash)
}

func TestRegister_RejectsOverlongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: ptr("neo"),
		Email:    ptr("neo@example.com"),
		Password: ptr(strings.Repeat("a", 73)),
	})
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Empty(t, repo.created)
}

func TestRegister_PropagatesRepositoryError(t *testing.T) {
	dbErr := errors.New(`duplicate key value violates unique constraint "users_username_key"`)
	svc := newTestUserService(&fakeUserRepo{createErr: dbErr})

	_, err := svc.Register(context.Background(), RegisterInput{Username: ptr("neo"), Email: ptr("neo@example.com"), Password: ptr("pw")})
	assert.ErrorIs(t, err, dbErr)
}

func TestNewUserService_DefaultsCost(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, config.AuthConfig{}, newTestLogger()).(*userService)
	assert.Equal(t, bcrypt.DefaultCost, svc.cost)
}
