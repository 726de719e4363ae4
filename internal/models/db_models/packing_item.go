package db_models

import "github.com/google/uuid"

type PackingItem struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	UserID    string    `gorm:"index"`
	Item      string
	Category  string
	IsChecked bool
}
