package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/request_models"
	"wanderlust/pkg/utils"
)

type fakeAIClient struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

const kyotoCompletion = `Here is your itinerary:
{
  "destination": "Kyoto, Japan",
  "totalDays": 3,
  "totalBudget": 1500,
  "currency": "USD",
  "overview": "Three days of temples and tea houses.",
  "bestTimeToVisit": "March to May",
  "dailyItinerary": [
    {"day": 1, "title": "Arrival and Gion", "activities": [
      {"time": "10:00 AM", "activity": "Fushimi Inari", "description": "Torii gates", "estimatedCost": 0, "location": "Fushimi", "coordinates": "34.9671,135.7727"}
    ], "meals": {"breakfast": {"suggestion": "Hotel", "cost": 10}, "lunch": {"suggestion": "Ramen shop", "cost": 12}, "dinner": {"suggestion": "Izakaya", "cost": 30}}, "accommodation": {"suggestion": "Gion ryokan", "cost": 120}},
    {"day": 2, "title": "Arashiyama", "activities": [], "meals": {"breakfast": {"suggestion": "Cafe", "cost": 8}, "lunch": {"suggestion": "Tofu kaiseki", "cost": 25}, "dinner": {"suggestion": "Yakitori", "cost": 28}}, "accommodation": {"suggestion": "Gion ryokan", "cost": 120}},
    {"day": 3, "title": "Temples and departure", "activities": [], "meals": {"breakfast": {"suggestion": "Bakery", "cost": 7}, "lunch": {"suggestion": "Bento", "cost": 10}, "dinner": {"suggestion": "Airport", "cost": 15}}, "accommodation": {"suggestion": "None", "cost": 0}}
  ],
  "budgetBreakdown": {"accommodation": 600, "food": 400, "activities": 300, "transportation": 150, "miscellaneous": 50},
  "travelTips": ["Buy an IC card", "Temples close early"],
  "packingEssentials": ["Comfortable shoes", "Passport"]
}
Enjoy your trip!`

func kyotoRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Destination: "Kyoto, Japan",
		Duration:    3,
		Budget:      1500,
		Currency:    "USD",
		Interests:   []string{"culture"},
	}
}

func TestGenerateItinerary(t *testing.T) {
	client := &fakeAIClient{response: kyotoCompletion}
	service := NewItineraryService(client)

	itinerary, err := service.GenerateItinerary(context.Background(), kyotoRequest())
	require.NoError(t, err)

	assert.Equal(t, "Kyoto, Japan", itinerary.Destination)
	assert.Equal(t, 3, itinerary.TotalDays)
	assert.Equal(t, "USD", itinerary.Currency)
	require.Len(t, itinerary.DailyItinerary, 3)
	for i, day := range itinerary.DailyItinerary {
		assert.Equal(t, i+1, day.Day)
	}
	assert.Equal(t, 600.0, itinerary.BudgetBreakdown.Accommodation)
}

func TestGenerateItineraryPromptContents(t *testing.T) {
	client := &fakeAIClient{response: kyotoCompletion}
	service := NewItineraryService(client)

	_, err := service.GenerateItinerary(context.Background(), kyotoRequest())
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "3-day travel itinerary for Kyoto, Japan")
	assert.Contains(t, client.lastPrompt, "1500 USD")
	assert.Contains(t, client.lastPrompt, "History & Culture (museums, monuments, cultural sites)")
	assert.Contains(t, client.lastPrompt, `"packingEssentials"`)
}

func TestGenerateItineraryParseFailure(t *testing.T) {
	service := NewItineraryService(&fakeAIClient{response: "Sorry, I cannot plan this trip."})

	_, err := service.GenerateItinerary(context.Background(), kyotoRequest())
	assert.ErrorIs(t, err, utils.ErrGenerationParse)
}

func TestGenerateItineraryMalformedJSON(t *testing.T) {
	service := NewItineraryService(&fakeAIClient{response: `{"destination": []}`})

	_, err := service.GenerateItinerary(context.Background(), kyotoRequest())
	assert.ErrorIs(t, err, utils.ErrGenerationParse)
}

func TestGenerateItineraryUpstreamError(t *testing.T) {
	upstream := errors.New("model unavailable")
	service := NewItineraryService(&fakeAIClient{err: upstream})

	_, err := service.GenerateItinerary(context.Background(), kyotoRequest())
	assert.ErrorIs(t, err, upstream)
}

func TestGenerateItineraryValidation(t *testing.T) {
	service := NewItineraryService(&fakeAIClient{response: kyotoCompletion})

	req := kyotoRequest()
	req.Destination = "   "
	_, err := service.GenerateItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = kyotoRequest()
	req.Duration = 0
	_, err = service.GenerateItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = kyotoRequest()
	req.Interests = nil
	_, err = service.GenerateItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
