package response_models

// Itinerary is the structured plan the generation gateway returns. Field names
// match the JSON schema the model is instructed to produce; missing fields in the
// model output simply unmarshal to zero values and flow through unchecked.
type Itinerary struct {
	Destination     string          `json:"destination"`
	TotalDays       int             `json:"totalDays"`
	TotalBudget     float64         `json:"totalBudget"`
	Currency        string          `json:"currency"`
	Overview        string          `json:"overview"`
	BestTimeToVisit string          `json:"bestTimeToVisit"`
	DailyItinerary  []DayPlan       `json:"dailyItinerary"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
	TravelTips      []string        `json:"travelTips"`
	PackingList     []string        `json:"packingEssentials"`
}

type DayPlan struct {
	Day           int           `json:"day"`
	Title         string        `json:"title"`
	Activities    []Activity    `json:"activities"`
	Meals         Meals         `json:"meals"`
	Accommodation Accommodation `json:"accommodation"`
}

type Activity struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Location      string  `json:"location"`
	Coordinates   string  `json:"coordinates"`
}

type Meals struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
}

type Meal struct {
	Suggestion string  `json:"suggestion"`
	Cost       float64 `json:"cost"`
}

type Accommodation struct {
	Suggestion string  `json:"suggestion"`
	Cost       float64 `json:"cost"`
}

type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Miscellaneous  float64 `json:"miscellaneous"`
}
