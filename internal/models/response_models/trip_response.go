package response_models

import "encoding/json"

// SavedTrip is the API view of a stored trip regardless of which store it came
// from. Itinerary carries the generation document verbatim.
type SavedTrip struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Budget      float64         `json:"budget"`
	Travelers   int             `json:"travelers"`
	TripType    string          `json:"tripType"`
	Itinerary   json.RawMessage `json:"itinerary"`
	IsFavorite  bool            `json:"isFavorite"`
	SavedAt     string          `json:"savedAt"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
}

// BudgetTracking aggregates a trip's ledger. RemainingBudget is derived on every
// read, never stored.
type BudgetTracking struct {
	TripID           string             `json:"tripId"`
	Expenses         []ExpenseResponse  `json:"expenses"`
	TotalSpent       float64            `json:"totalSpent"`
	RemainingBudget  float64            `json:"remainingBudget"`
	CategorySpending map[string]float64 `json:"categorySpending"`
}

type PackingItemResponse struct {
	ID        string `json:"id"`
	Item      string `json:"item"`
	Category  string `json:"category"`
	IsChecked bool   `json:"isChecked"`
}

type SyncStatus struct {
	SavedTrips int    `json:"savedTrips"`
	LastSync   string `json:"lastSync"`
}
