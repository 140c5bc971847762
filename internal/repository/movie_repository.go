package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

const selectMovieWithGenre = "SELECT m.*, g.name AS genre_name FROM movies m LEFT JOIN genres g ON m.genre_id = g.id"

// MovieFields are the writable movie columns. Nil values are stored as NULL.
type MovieFields struct {
	Title       *string
	Description *string
	ReleaseDate *string
	GenreID     *int64
}

type MovieRepository interface {
	Create(ctx context.Context, fields MovieFields) (*models.Movie, error)
	Update(ctx context.Context, id int64, fields MovieFields) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.MovieWithGenre, error)
	FindAll(ctx context.Context) ([]models.MovieWithGenre, error)
	SearchByTitle(ctx context.Context, keyword string) ([]models.MovieWithGenre, error)
}

type movieRepository struct {
	base
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{base: newBase(db)}
}

func (r *movieRepository) Create(ctx context.Context, fields MovieFields) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO movies (title, description, release_date, genre_id) VALUES (?, ?, ?, ?) RETURNING *",
			fields.Title, fields.Description, fields.ReleaseDate, fields.GenreID).
		Scan(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update overwrites all writable columns. It returns ErrMovieNotFound when no row has the id.
func (r *movieRepository) Update(ctx context.Context, id int64, fields MovieFields) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	result := r.db.WithContext(ctx).
		Raw("UPDATE movies SET title = ?, description = ?, release_date = ?, genre_id = ? WHERE id = ? RETURNING *",
			fields.Title, fields.Description, fields.ReleaseDate, fields.GenreID, id).
		Scan(&movie)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMovieNotFound
	}
	return &movie, nil
}

// Delete removes the movie if present. Deleting a missing id is not an error.
func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Exec("DELETE FROM movies WHERE id = ?", id).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*models.MovieWithGenre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.MovieWithGenre
	result := r.db.WithContext(ctx).
		Raw(selectMovieWithGenre+" WHERE m.id = ?", id).
		Scan(&movie)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMovieNotFound
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.MovieWithGenre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.MovieWithGenre{}
	err := r.db.WithContext(ctx).
		Raw(selectMovieWithGenre + " ORDER BY m.id").
		Scan(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// SearchByTitle matches keyword as a case-insensitive substring of the title.
func (r *movieRepository) SearchByTitle(ctx context.Context, keyword string) ([]models.MovieWithGenre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.MovieWithGenre{}
	err := r.db.WithContext(ctx).
		Raw(selectMovieWithGenre+" WHERE m.title ILIKE ? ORDER BY m.id", "%"+keyword+"%").
		Scan(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
