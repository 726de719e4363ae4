package db_models

import "github.com/google/uuid"

type Expense struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index"`
	UserID      string    `gorm:"index"`
	Category    string
	Description string
	Amount      float64
	Date        string
}
