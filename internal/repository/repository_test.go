package repository

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var createdAt = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

var movieColumns = []string{"id", "title", "description", "release_date", "genre_id", "created_at"}

var movieWithGenreColumns = append(append([]string{}, movieColumns...), "genre_name")

func newMockDatabase(t *testing.T) (*database.Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return database.New(gdb, config.DatabaseConfig{QueryTimeout: time.Second}, log), mock
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func intPtr(i int) *int { return &i }

func TestGenreRepository_Create(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewGenreRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO genres (name) VALUES ($1) RETURNING *")).
		WithArgs("Sci-Fi").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Sci-Fi"))

	genre, err := repo.Create(context.Background(), strPtr("Sci-Fi"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), genre.ID)
	assert.Equal(t, "Sci-Fi", genre.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreRepository_Create_NullName(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewGenreRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO genres")).
		WithArgs(nil).
		WillReturnError(errors.New(`null value in column "name" violates not-null constraint`))

	_, err := repo.Create(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-null")
}

func TestMovieRepository_Create(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO movies (title, description, release_date, genre_id) VALUES ($1, $2, $3, $4) RETURNING *")).
		WithArgs("Dune", nil, "2021-10-22", 1).
		WillReturnRows(sqlmock.NewRows(movieColumns).
			AddRow(1, "Dune", nil, time.Date(2021, time.October, 22, 0, 0, 0, 0, time.UTC), 1, createdAt))

	movie, err := repo.Create(context.Background(), MovieFields{
		Title:       strPtr("Dune"),
		ReleaseDate: strPtr("2021-10-22"),
		GenreID:     int64Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), movie.ID)
	assert.Equal(t, "Dune", movie.Title)
	assert.Nil(t, movie.Description)
	require.NotNil(t, movie.ReleaseDate)
	assert.Equal(t, "2021-10-22", movie.ReleaseDate.String())
	require.NotNil(t, movie.GenreID)
	assert.Equal(t, int64(1), *movie.GenreID)
	assert.Equal(t, createdAt, movie.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_FindByID(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT m.*, g.name AS genre_name FROM movies m LEFT JOIN genres g ON m.genre_id = g.id WHERE m.id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(movieWithGenreColumns).
			AddRow(1, "Dune", "Desert planet", nil, 1, createdAt, "Sci-Fi"))

	movie, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", movie.Title)
	require.NotNil(t, movie.Description)
	assert.Equal(t, "Desert planet", *movie.Description)
	assert.Nil(t, movie.ReleaseDate)
	require.NotNil(t, movie.GenreName)
	assert.Equal(t, "Sci-Fi", *movie.GenreName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE m.id = $1")).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(movieWithGenreColumns))

	movie, err := repo.FindByID(context.Background(), 999)
	assert.Nil(t, movie)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieRepository_FindAll(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT m.*, g.name AS genre_name FROM movies m LEFT JOIN genres g ON m.genre_id = g.id ORDER BY m.id")).
		WillReturnRows(sqlmock.NewRows(movieWithGenreColumns).
			AddRow(1, "Dune", nil, nil, 1, createdAt, "Sci-Fi").
			AddRow(2, "Heat", nil, nil, nil, createdAt, nil))

	movies, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Sci-Fi", *movies[0].GenreName)
	assert.Nil(t, movies[1].GenreID)
	assert.Nil(t, movies[1].GenreName)
}

func TestMovieRepository_FindAll_Empty(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM movies m LEFT JOIN genres g")).
		WillReturnRows(sqlmock.NewRows(movieWithGenreColumns))

	movies, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestMovieRepository_SearchByTitle(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE m.title ILIKE $1 ORDER BY m.id")).
		WithArgs("%mat%").
		WillReturnRows(sqlmock.NewRows(movieWithGenreColumns).
			AddRow(3, "The Matrix", nil, nil, nil, createdAt, nil))

	movies, err := repo.SearchByTitle(context.Background(), "mat")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_Update(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE movies SET title = $1, description = $2, release_date = $3, genre_id = $4 WHERE id = $5 RETURNING *")).
		WithArgs("Dune: Part One", nil, nil, nil, 1).
		WillReturnRows(sqlmock.NewRows(movieColumns).
			AddRow(1, "Dune: Part One", nil, nil, nil, createdAt))

	movie, err := repo.Update(context.Background(), 1, MovieFields{Title: strPtr("Dune: Part One")})
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part One", movie.Title)
	assert.Nil(t, movie.GenreID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE movies SET")).
		WillReturnRows(sqlmock.NewRows(movieColumns))

	_, err := repo.Update(context.Background(), 42, MovieFields{Title: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieRepository_Delete(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewMovieRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM movies WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING *")).
		WithArgs("neo", "neo@example.com", "$2a$04$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(1, "neo", "neo@example.com", "$2a$04$hash", createdAt))

	user, err := repo.Create(context.Background(), UserFields{
		Username:     strPtr("neo"),
		Email:        strPtr("neo@example.com"),
		PasswordHash: strPtr("$2a$04$hash"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "$2a$04$hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO reviews (movie_id, user_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING *")).
		WithArgs(1, 2, 5, "Spice must flow.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "user_id", "rating", "comment", "created_at"}).
			AddRow(1, 1, 2, 5, "Spice must flow.", createdAt))

	review, err := repo.Create(context.Background(), ReviewFields{
		MovieID: int64Ptr(1),
		UserID:  int64Ptr(2),
		Rating:  intPtr(5),
		Comment: strPtr("Spice must flow."),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, *review.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_RatingOutOfRange(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
		WithArgs(1, 2, 6, nil).
		WillReturnError(errors.New(`new row for relation "reviews" violates check constraint "reviews_rating_check"`))

	_, err := repo.Create(context.Background(), ReviewFields{MovieID: int64Ptr(1), UserID: int64Ptr(2), Rating: intPtr(6)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reviews_rating_check")
}

func TestFavouriteRepository_Create(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFavouriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO favourites (user_id, movie_id) VALUES ($1, $2) RETURNING *")).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "movie_id", "created_at"}).
			AddRow(1, 1, 3, createdAt))

	favourite, err := repo.Create(context.Background(), int64Ptr(1), int64Ptr(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), *favourite.MovieID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavouriteRepository_ListMoviesByUser(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFavouriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT m.* FROM movies m INNER JOIN favourites f ON m.id = f.movie_id WHERE f.user_id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(movieColumns).
			AddRow(3, "The Matrix", nil, nil, nil, createdAt))

	movies, err := repo.ListMoviesByUser(context.Background(), int64Ptr(1))
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
}

func TestFavouriteRepository_ListMoviesByUser_NoUser(t *testing.T) {
	db, mock := newMockDatabase(t)
	repo := NewFavouriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.user_id = $1")).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows(movieColumns))

	movies, err := repo.ListMoviesByUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, movies)
	assert.NotNil(t, movies)
}

func TestWithTimeout_KeepsExistingDeadline(t *testing.T) {
	r := base{timeout: time.Second}

	parent, cancelParent := context.WithTimeout(context.Background(), time.Minute)
	defer cancelParent()

	ctx, cancel := r.withTimeout(parent)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestWithTimeout_ZeroTimeoutLeavesContextAlone(t *testing.T) {
	r := base{}

	ctx, cancel := r.withTimeout(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
}
