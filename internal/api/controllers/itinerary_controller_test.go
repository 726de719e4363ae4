package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

func newItineraryRouter(service services.ItineraryServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/generate-itinerary", NewItineraryController(service).GenerateItinerary)
	return r
}

type promptEchoClient struct {
	response string
}

func (c *promptEchoClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.response, nil
}

func TestGenerateItineraryEndpoint(t *testing.T) {
	service := services.NewItineraryService(&promptEchoClient{response: `{
		"destination": "Kyoto, Japan",
		"totalDays": 3,
		"totalBudget": 1500,
		"currency": "USD",
		"dailyItinerary": [{"day": 1}, {"day": 2}, {"day": 3}]
	}`})
	router := newItineraryRouter(service)

	body := `{"destination": "Kyoto, Japan", "duration": 3, "budget": 1500, "currency": "USD", "interests": ["culture"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-itinerary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The endpoint returns the itinerary document directly, no envelope.
	var itinerary response_models.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &itinerary))
	assert.Equal(t, "Kyoto, Japan", itinerary.Destination)
	assert.Equal(t, 3, itinerary.TotalDays)
	assert.Len(t, itinerary.DailyItinerary, 3)
}

func TestGenerateItineraryEndpointFailure(t *testing.T) {
	service := services.NewItineraryService(&promptEchoClient{response: "no json here"})
	router := newItineraryRouter(service)

	body := `{"destination": "Kyoto, Japan", "duration": 3, "budget": 1500, "currency": "USD", "interests": ["culture"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-itinerary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "Failed to generate itinerary. Please try again.", payload["error"])
}

func TestWeatherEndpointMissingDestination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/weather", NewWeatherController(stubWeather{}).GetWeather)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubWeather struct{}

func (stubWeather) GetForecast(ctx context.Context, destination string, days int) ([]response_models.WeatherData, error) {
	return nil, utils.ErrLocationNotFound
}

func TestWeatherEndpointLocationNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/weather", NewWeatherController(stubWeather{}).GetWeather)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather?destination=Nowhere", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "Location not found", payload["error"])
}

func TestReviewsEndpointMissingPlace(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/reviews", NewReviewsController(stubReviews{}).GetReviews)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubReviews struct{}

func (stubReviews) GetRating(ctx context.Context, place string, location string) (*response_models.ReviewData, error) {
	return &response_models.ReviewData{Rating: 4.5, TotalReviews: 120, Source: "Google Reviews"}, nil
}

func TestReviewsEndpointRawBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/reviews", NewReviewsController(stubReviews{}).GetReviews)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews?place=Fushimi+Inari", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload response_models.ReviewData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 4.5, payload.Rating)
	assert.Equal(t, "Google Reviews", payload.Source)
}
