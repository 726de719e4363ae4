package db_models

// Trip is a saved itinerary owned by one user. The generated plan is kept as an
// opaque jsonb blob; the relational columns exist for listing and filtering only.
type Trip struct {
	BaseModel
	UserID        string `gorm:"index"`
	Title         string
	Destination   string
	StartDate     string
	EndDate       string
	Budget        float64
	Travelers     int
	TripType      string
	ItineraryData string `gorm:"type:jsonb"`
	IsFavorite    bool
	IsShared      bool

	Expenses     []Expense
	PackingItems []PackingItem
}
