package models

import "time"

type Review struct {
	ID        int64     `gorm:"primaryKey" json:"id" example:"1"`
	MovieID   *int64    `json:"movie_id" example:"1"`
	UserID    *int64    `json:"user_id" example:"1"`
	Rating    *int      `json:"rating" example:"5"`
	Comment   *string   `json:"comment" example:"Spice must flow."`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
