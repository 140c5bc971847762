package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type UserFields struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

type UserRepository interface {
	Create(ctx context.Context, fields UserFields) (*models.User, error)
}

type userRepository struct {
	base
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{base: newBase(db)}
}

func (r *userRepository) Create(ctx context.Context, fields UserFields) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?) RETURNING *",
			fields.Username, fields.Email, fields.PasswordHash).
		Scan(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
