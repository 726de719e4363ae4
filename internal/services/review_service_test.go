package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewStub(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestGetRating(t *testing.T) {
	server := reviewStub(t, `{
		"status": "OK",
		"candidates": [{"place_id": "abc123", "rating": 4.6, "user_ratings_total": 1893}]
	}`, http.StatusOK)
	defer server.Close()

	service := NewReviewServiceWithBase(server.URL, server.Client())

	rating, err := service.GetRating(context.Background(), "Fushimi Inari", "Kyoto")
	require.NoError(t, err)

	assert.Equal(t, 4.6, rating.Rating)
	assert.Equal(t, 1893, rating.TotalReviews)
	assert.Equal(t, "Google Reviews", rating.Source)
	assert.Contains(t, rating.URL, "place_id:abc123")
}

func TestGetRatingZeroRatingDefaults(t *testing.T) {
	server := reviewStub(t, `{
		"status": "OK",
		"candidates": [{"place_id": "abc123", "rating": 0, "user_ratings_total": 0}]
	}`, http.StatusOK)
	defer server.Close()

	service := NewReviewServiceWithBase(server.URL, server.Client())

	rating, err := service.GetRating(context.Background(), "Obscure Cafe", "Kyoto")
	require.NoError(t, err)
	assert.Equal(t, 4.0, rating.Rating)
}

func TestGetRatingNoCandidatesReturnsMock(t *testing.T) {
	server := reviewStub(t, `{"status": "ZERO_RESULTS", "candidates": []}`, http.StatusOK)
	defer server.Close()

	service := NewReviewServiceWithBase(server.URL, server.Client())

	rating, err := service.GetRating(context.Background(), "Nonexistent Place", "Nowhere")
	require.NoError(t, err)

	assert.Equal(t, "Google Reviews", rating.Source)
	assert.GreaterOrEqual(t, rating.Rating, 4.2)
	assert.LessOrEqual(t, rating.Rating, 5.0)
	assert.GreaterOrEqual(t, rating.TotalReviews, 50)
}

func TestGetRatingUpstreamFailureReturnsMock(t *testing.T) {
	server := reviewStub(t, "", http.StatusServiceUnavailable)
	defer server.Close()

	service := NewReviewServiceWithBase(server.URL, server.Client())

	rating, err := service.GetRating(context.Background(), "Fushimi Inari", "Kyoto")
	require.NoError(t, err)

	assert.Equal(t, "TripAdvisor", rating.Source)
	assert.GreaterOrEqual(t, rating.Rating, 4.0)
	assert.LessOrEqual(t, rating.Rating, 5.0)
	assert.GreaterOrEqual(t, rating.TotalReviews, 20)
	assert.Contains(t, rating.URL, "tripadvisor.com")
}
