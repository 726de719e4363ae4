package request_models

import "encoding/json"

// TripRequest is the generation input: what the trip form submits.
type TripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Duration    int      `json:"duration" binding:"required,min=1"`
	Budget      float64  `json:"budget" binding:"required,gt=0"`
	Currency    string   `json:"currency" binding:"required"`
	Interests   []string `json:"interests" binding:"required,min=1"`
}

type SaveTripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination" binding:"required"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Travelers   int     `json:"travelers"`
	TripType    string  `json:"trip_type"`
	// Raw itinerary document as returned by the generation endpoint.
	Itinerary json.RawMessage `json:"itinerary" binding:"required"`
}

// ApplyTemplateRequest carries optional overrides for a template's defaults.
type ApplyTemplateRequest struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      float64  `json:"budget"`
	Currency    string   `json:"currency"`
	Interests   []string `json:"interests"`
}

type MigrateTripsRequest struct {
	GuestID string `json:"guest_id" binding:"required"`
}
