package handlers

import (
	"strconv"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
)

type GenreRequest struct {
	Name *string `json:"name" example:"Sci-Fi"`
}

type MovieRequest struct {
	Title       *string `json:"title" example:"Dune"`
	Description *string `json:"description" example:"A noble family becomes embroiled in a war for control over Arrakis."`
	ReleaseDate *string `json:"release_date" example:"2021-10-22"`
	GenreID     *int64  `json:"genre_id" example:"1"`
}

func (r MovieRequest) fields() repository.MovieFields {
	return repository.MovieFields{
		Title:       r.Title,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		GenreID:     r.GenreID,
	}
}

type RegisterRequest struct {
	Username *string `json:"username" example:"neo"`
	Email    *string `json:"email" example:"neo@example.com"`
	Password *string `json:"password" example:"there-is-no-spoon"`
}

func (r RegisterRequest) input() services.RegisterInput {
	return services.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type ReviewRequest struct {
	MovieID *int64  `json:"movie_id" example:"1"`
	UserID  *int64  `json:"user_id" example:"1"`
	Rating  *int    `json:"rating" example:"5"`
	Comment *string `json:"comment" example:"Spice must flow."`
}

func (r ReviewRequest) fields() repository.ReviewFields {
	return repository.ReviewFields{
		MovieID: r.MovieID,
		UserID:  r.UserID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type FavouriteRequest struct {
	UserID  *int64 `json:"user_id" example:"1"`
	MovieID *int64 `json:"movie_id" example:"1"`
}

// parseOptionalInt returns nil for an empty value.
func parseOptionalInt(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
