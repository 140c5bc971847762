package models

type Genre struct {
	ID   int64  `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"not null" json:"name" example:"Sci-Fi"`
}

func (Genre) TableName() string {
	return "genres"
}
