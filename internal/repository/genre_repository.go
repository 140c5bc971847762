package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type GenreRepository interface {
	Create(ctx context.Context, name *string) (*models.Genre, error)
}

type genreRepository struct {
	base
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{base: newBase(db)}
}

func (r *genreRepository) Create(ctx context.Context, name *string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO genres (name) VALUES (?) RETURNING *", name).
		Scan(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}
