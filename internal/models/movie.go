package models

import (
	"time"
)

type Movie struct {
	ID          int64     `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"not null" json:"title" example:"Dune"`
	Description *string   `json:"description" example:"A noble family becomes embroiled in a war for control over Arrakis."`
	ReleaseDate *Date     `json:"release_date" swaggertype:"string" example:"2021-10-22"`
	GenreID     *int64    `json:"genre_id" example:"1"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieWithGenre is a movie row left-joined with its genre name.
type MovieWithGenre struct {
	Movie
	GenreName *string `json:"genre_name" example:"Sci-Fi"`
}
