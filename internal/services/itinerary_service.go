package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.TripRequest) (*response_models.Itinerary, error)
	BuildPrompt(request request_models.TripRequest) string
}

type ItineraryService struct {
	aiClient utils.AIClientInterface
}

func NewItineraryService(aiClient utils.AIClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient: aiClient,
	}
}

// interestDisplay expands interest tags into the phrasing the prompt uses.
var interestDisplay = map[string]string{
	"adventure":  "Adventure (hiking, sports, outdoor activities)",
	"food":       "Food & Dining (restaurants, local cuisine, food tours)",
	"culture":    "History & Culture (museums, monuments, cultural sites)",
	"nature":     "Nature & Scenery (parks, beaches, natural landmarks)",
	"relaxation": "Relaxation (spas, wellness, leisurely activities)",
}

// GenerateItinerary runs the full gateway pass: prompt, completion, extraction,
// parse. The model output is trusted beyond JSON-parseability; malformed fields
// flow through as zero values. No retry on any failure.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, request request_models.TripRequest) (*response_models.Itinerary, error) {
	if strings.TrimSpace(request.Destination) == "" || request.Duration < 1 || len(request.Interests) == 0 {
		return nil, utils.ErrInvalidInput
	}

	prompt := s.BuildPrompt(request)

	completion, err := s.aiClient.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw := utils.ExtractJSONObject(completion)
	if raw == "" {
		return nil, utils.ErrGenerationParse
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, utils.ErrGenerationParse
	}

	return &itinerary, nil
}

func (s *ItineraryService) BuildPrompt(request request_models.TripRequest) string {
	interests := make([]string, 0, len(request.Interests))
	for _, id := range request.Interests {
		if display, ok := interestDisplay[id]; ok {
			interests = append(interests, display)
		} else {
			interests = append(interests, id)
		}
	}

	return fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s with a total budget of %.0f %s.

Traveler interests: %s

IMPORTANT: Provide your response as a valid JSON object with this EXACT structure. Do not include any text before or after the JSON:

{
  "destination": "%s",
  "totalDays": %d,
  "totalBudget": %.0f,
  "currency": "%s",
  "overview": "A brief 2-3 sentence overview of the trip",
  "bestTimeToVisit": "Best months to visit with brief explanation",
  "dailyItinerary": [
    {
      "day": 1,
      "title": "Day title",
      "activities": [
        {
          "time": "10:00 AM",
          "activity": "Activity name",
          "description": "Brief description",
          "estimatedCost": 0,
          "location": "Specific location name",
          "coordinates": "latitude,longitude"
        }
      ],
      "meals": {
        "breakfast": {"suggestion": "Restaurant/place name", "cost": 15},
        "lunch": {"suggestion": "Restaurant/place name", "cost": 20},
        "dinner": {"suggestion": "Restaurant/place name", "cost": 35}
      },
      "accommodation": {"suggestion": "Hotel name or area", "cost": 120}
    }
  ],
  "budgetBreakdown": {
    "accommodation": 600,
    "food": 400,
    "activities": 300,
    "transportation": 200,
    "miscellaneous": 100
  },
  "travelTips": ["Tip 1", "Tip 2", "Tip 3", "Tip 4", "Tip 5"],
  "packingEssentials": ["Item 1", "Item 2", "Item 3", "Item 4", "Item 5"]
}

Requirements:
1. Include 4-6 activities per day based on interests
2. Provide realistic coordinates (latitude,longitude format)
3. Budget breakdown must sum close to total budget
4. Include specific restaurant/hotel recommendations
5. Costs should be realistic for the destination in %s
6. Time slots should be logical (morning to evening)
7. Include free/low-cost activities if budget is limited
8. Provide 5-8 practical travel tips
9. List 8-12 essential items to pack
10. Make sure ALL costs are in %s currency

Respond ONLY with the JSON object, no additional text.`,
		request.Duration, request.Destination, request.Budget, request.Currency,
		strings.Join(interests, ", "),
		request.Destination, request.Duration, request.Budget, request.Currency,
		request.Currency, request.Currency)
}
