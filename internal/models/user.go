package models

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id" example:"1"`
	Username     string    `gorm:"not null" json:"username" example:"neo"`
	Email        string    `gorm:"not null" json:"email" example:"neo@example.com"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
