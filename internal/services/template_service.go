package services

import (
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

type TemplateServiceInterface interface {
	ListTemplates() []response_models.TripTemplate
	GetTemplate(id string) (*response_models.TripTemplate, error)
	ApplyTemplate(id string, overrides request_models.ApplyTemplateRequest) (*request_models.TripRequest, error)
}

type TemplateService struct {
	templates []response_models.TripTemplate
}

func NewTemplateService() TemplateServiceInterface {
	return &TemplateService{templates: tripTemplates}
}

func (s *TemplateService) ListTemplates() []response_models.TripTemplate {
	return s.templates
}

func (s *TemplateService) GetTemplate(id string) (*response_models.TripTemplate, error) {
	for i := range s.templates {
		if s.templates[i].ID == id {
			return &s.templates[i], nil
		}
	}
	return nil, utils.ErrTemplateNotFound
}

// ApplyTemplate fills a trip request from a template's defaults; non-zero
// override fields win.
func (s *TemplateService) ApplyTemplate(id string, overrides request_models.ApplyTemplateRequest) (*request_models.TripRequest, error) {
	template, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	request := request_models.TripRequest{
		Destination: template.SuggestedDestinations[0],
		Duration:    template.DefaultDuration,
		Budget:      template.DefaultBudgetRange.Min,
		Currency:    "USD",
		Interests:   template.Interests,
	}
	if overrides.Destination != "" {
		request.Destination = overrides.Destination
	}
	if overrides.Duration > 0 {
		request.Duration = overrides.Duration
	}
	if overrides.Budget > 0 {
		request.Budget = overrides.Budget
	}
	if overrides.Currency != "" {
		request.Currency = overrides.Currency
	}
	if len(overrides.Interests) > 0 {
		request.Interests = overrides.Interests
	}
	return &request, nil
}

var tripTemplates = []response_models.TripTemplate{
	{
		ID:                    "romantic-getaway",
		Name:                  "Romantic Getaway",
		Description:           "Perfect for couples seeking relaxation and romance",
		Emoji:                 "❤️",
		DefaultDuration:       5,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 2000, Max: 5000},
		Interests:             []string{"relaxation", "food", "nature"},
		SuggestedDestinations: []string{"Paris, France", "Santorini, Greece", "Maldives", "Venice, Italy", "Bali, Indonesia"},
		Icon:                  "heart",
	},
	{
		ID:                    "family-adventure",
		Name:                  "Family Adventure",
		Description:           "Fun activities for the whole family",
		Emoji:                 "👨‍👩‍👧‍👦",
		DefaultDuration:       7,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 3000, Max: 7000},
		Interests:             []string{"adventure", "nature", "culture"},
		SuggestedDestinations: []string{"Orlando, USA", "Tokyo, Japan", "Barcelona, Spain", "Dubai, UAE", "Singapore"},
		Icon:                  "users",
	},
	{
		ID:                    "solo-backpacking",
		Name:                  "Solo Backpacking",
		Description:           "Budget-friendly adventures for solo travelers",
		Emoji:                 "🎒",
		DefaultDuration:       14,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 1000, Max: 2500},
		Interests:             []string{"adventure", "culture", "nature"},
		SuggestedDestinations: []string{"Bangkok, Thailand", "Lisbon, Portugal", "Prague, Czech Republic", "Hanoi, Vietnam", "Budapest, Hungary"},
		Icon:                  "backpack",
	},
	{
		ID:                    "beach-vacation",
		Name:                  "Beach Vacation",
		Description:           "Sun, sand, and relaxation by the ocean",
		Emoji:                 "🏖️",
		DefaultDuration:       7,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 2500, Max: 5000},
		Interests:             []string{"relaxation", "nature", "food"},
		SuggestedDestinations: []string{"Cancun, Mexico", "Phuket, Thailand", "Hawaii, USA", "Seychelles", "Fiji"},
		Icon:                  "palmtree",
	},
	{
		ID:                    "mountain-adventure",
		Name:                  "Mountain Adventure",
		Description:           "Hiking, trekking, and mountain exploration",
		Emoji:                 "⛰️",
		DefaultDuration:       10,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 1500, Max: 4000},
		Interests:             []string{"adventure", "nature"},
		SuggestedDestinations: []string{"Swiss Alps, Switzerland", "Patagonia, Argentina", "Himalayas, Nepal", "Banff, Canada", "New Zealand"},
		Icon:                  "mountain",
	},
	{
		ID:                    "business-trip",
		Name:                  "Business Trip",
		Description:           "Efficient planning for work travel",
		Emoji:                 "💼",
		DefaultDuration:       3,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 1500, Max: 4000},
		Interests:             []string{"food", "culture"},
		SuggestedDestinations: []string{"New York, USA", "London, UK", "Singapore", "Hong Kong", "Dubai, UAE"},
		Icon:                  "briefcase",
	},
	{
		ID:                    "cultural-exploration",
		Name:                  "Cultural Exploration",
		Description:           "Immerse yourself in history and culture",
		Emoji:                 "🏛️",
		DefaultDuration:       8,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 2000, Max: 4500},
		Interests:             []string{"culture", "food"},
		SuggestedDestinations: []string{"Rome, Italy", "Cairo, Egypt", "Kyoto, Japan", "Athens, Greece", "Istanbul, Turkey"},
		Icon:                  "landmark",
	},
	{
		ID:                    "foodie-tour",
		Name:                  "Foodie Tour",
		Description:           "Culinary adventures and gastronomic delights",
		Emoji:                 "🍽️",
		DefaultDuration:       6,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 2500, Max: 6000},
		Interests:             []string{"food", "culture"},
		SuggestedDestinations: []string{"Bangkok, Thailand", "Paris, France", "Tokyo, Japan", "Barcelona, Spain", "Mumbai, India"},
		Icon:                  "utensils",
	},
	{
		ID:                    "wildlife-safari",
		Name:                  "Wildlife Safari",
		Description:           "Experience nature and observe wildlife",
		Emoji:                 "🦁",
		DefaultDuration:       10,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 3000, Max: 8000},
		Interests:             []string{"nature", "adventure"},
		SuggestedDestinations: []string{"Serengeti, Tanzania", "Kruger, South Africa", "Masai Mara, Kenya", "Costa Rica", "Galapagos, Ecuador"},
		Icon:                  "binoculars",
	},
	{
		ID:                    "wellness-retreat",
		Name:                  "Wellness Retreat",
		Description:           "Rejuvenate with yoga, spa, and meditation",
		Emoji:                 "🧘",
		DefaultDuration:       5,
		DefaultBudgetRange:    response_models.BudgetRange{Min: 2000, Max: 5000},
		Interests:             []string{"relaxation", "nature"},
		SuggestedDestinations: []string{"Ubud, Bali", "Kerala, India", "Sedona, USA", "Phuket, Thailand", "Tulum, Mexico"},
		Icon:                  "sparkles",
	},
}
