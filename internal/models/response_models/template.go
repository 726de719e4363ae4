package response_models

type TripTemplate struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	Description           string      `json:"description"`
	Emoji                 string      `json:"emoji"`
	DefaultDuration       int         `json:"defaultDuration"`
	DefaultBudgetRange    BudgetRange `json:"defaultBudgetRange"`
	Interests             []string    `json:"interests"`
	SuggestedDestinations []string    `json:"suggestedDestinations"`
	Icon                  string      `json:"icon"`
}

type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
