package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of its input.
const maxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password must be 72 bytes or fewer")

type RegisterInput struct {
	Username *string
	Email    *string
	Password *string
}

type UserService interface {
	// Register stores a new user with a bcrypt hash of the submitted password.
	// A missing password is passed through as NULL and rejected by the database.
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
}

type userService struct {
	repo   repository.UserRepository
	cost   int
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, cfg config.AuthConfig, logger *logrus.Logger) UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &userService{
		repo:   repo,
		cost:   cost,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var passwordHash *string
	if input.Password != nil {
		hash, err := s.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	user, err := s.repo.Create(ctx, repository.UserFields{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *userService) hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
