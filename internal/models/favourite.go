package models

import "time"

type Favourite struct {
	ID        int64     `gorm:"primaryKey" json:"id" example:"1"`
	UserID    *int64    `json:"user_id" example:"1"`
	MovieID   *int64    `json:"movie_id" example:"1"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favourite) TableName() string {
	return "favourites"
}
