package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type FavouriteRepository interface {
	// Create inserts a favourite. A repeated (user, movie) pair is rejected by the database.
	Create(ctx context.Context, userID, movieID *int64) (*models.Favourite, error)
	ListMoviesByUser(ctx context.Context, userID *int64) ([]models.Movie, error)
}

type favouriteRepository struct {
	base
}

func NewFavouriteRepository(db *database.Database) FavouriteRepository {
	return &favouriteRepository{base: newBase(db)}
}

func (r *favouriteRepository) Create(ctx context.Context, userID, movieID *int64) (*models.Favourite, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var favourite models.Favourite
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO favourites (user_id, movie_id) VALUES (?, ?) RETURNING *", userID, movieID).
		Scan(&favourite).Error
	if err != nil {
		return nil, err
	}
	return &favourite, nil
}

func (r *favouriteRepository) ListMoviesByUser(ctx context.Context, userID *int64) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.Movie{}
	err := r.db.WithContext(ctx).
		Raw("SELECT m.* FROM movies m INNER JOIN favourites f ON m.id = f.movie_id WHERE f.user_id = ? ORDER BY f.created_at, f.id", userID).
		Scan(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
