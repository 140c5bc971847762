package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type ReviewFields struct {
	MovieID *int64
	UserID  *int64
	Rating  *int
	Comment *string
}

type ReviewRepository interface {
	// Create inserts a review. Ratings outside 1..5 are rejected by the database.
	Create(ctx context.Context, fields ReviewFields) (*models.Review, error)
}

type reviewRepository struct {
	base
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{base: newBase(db)}
}

func (r *reviewRepository) Create(ctx context.Context, fields ReviewFields) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	err := r.db.WithContext(ctx).
		Raw("INSERT INTO reviews (movie_id, user_id, rating, comment) VALUES (?, ?, ?, ?) RETURNING *",
			fields.MovieID, fields.UserID, fields.Rating, fields.Comment).
		Scan(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}
