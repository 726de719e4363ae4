package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/pkg/utils"
)

func weatherStub(t *testing.T, geoBody string, geoStatus int, forecastBody string, forecastStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/geo/1.0/direct"):
			w.WriteHeader(geoStatus)
			fmt.Fprint(w, geoBody)
		case strings.HasPrefix(r.URL.Path, "/data/2.5/forecast"):
			w.WriteHeader(forecastStatus)
			fmt.Fprint(w, forecastBody)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func forecastBody(entries int) string {
	var list []string
	for i := 0; i < entries; i++ {
		list = append(list, fmt.Sprintf(`{
			"dt": %d,
			"main": {"temp": 21.6, "humidity": 55},
			"weather": [{"main": "Clouds", "icon": "03d"}],
			"wind": {"speed": 4.2}
		}`, 1750000000+int64(i)*10800))
	}
	return `{"list": [` + strings.Join(list, ",") + `]}`
}

func TestGetForecast(t *testing.T) {
	server := weatherStub(t, `[{"lat": 35.01, "lon": 135.77}]`, http.StatusOK, forecastBody(40), http.StatusOK)
	defer server.Close()

	service := NewWeatherServiceWithBase(server.URL, server.Client())

	weather, err := service.GetForecast(context.Background(), "Kyoto", 5)
	require.NoError(t, err)
	require.Len(t, weather, 5)

	first := weather[0]
	assert.Equal(t, 22.0, first.Temperature)
	assert.Equal(t, "Clouds", first.Condition)
	assert.Equal(t, 55.0, first.Humidity)
	assert.Equal(t, 15.0, first.WindSpeed) // 4.2 m/s -> km/h, rounded
	assert.Equal(t, "03d", first.Icon)
}

func TestGetForecastCapsDays(t *testing.T) {
	server := weatherStub(t, `[{"lat": 35.01, "lon": 135.77}]`, http.StatusOK, forecastBody(40), http.StatusOK)
	defer server.Close()

	service := NewWeatherServiceWithBase(server.URL, server.Client())

	weather, err := service.GetForecast(context.Background(), "Kyoto", 14)
	require.NoError(t, err)
	assert.Len(t, weather, 5)
}

func TestGetForecastLocationNotFound(t *testing.T) {
	server := weatherStub(t, `[]`, http.StatusOK, "", http.StatusOK)
	defer server.Close()

	service := NewWeatherServiceWithBase(server.URL, server.Client())

	_, err := service.GetForecast(context.Background(), "Nowheresville", 5)
	assert.ErrorIs(t, err, utils.ErrLocationNotFound)
}

func TestGetForecastGeoFailure(t *testing.T) {
	server := weatherStub(t, "", http.StatusInternalServerError, "", http.StatusOK)
	defer server.Close()

	service := NewWeatherServiceWithBase(server.URL, server.Client())

	_, err := service.GetForecast(context.Background(), "Kyoto", 5)
	assert.ErrorIs(t, err, utils.ErrLocationNotFound)
}

func TestGetForecastUpstreamFailureReturnsMock(t *testing.T) {
	server := weatherStub(t, `[{"lat": 35.01, "lon": 135.77}]`, http.StatusOK, "", http.StatusBadGateway)
	defer server.Close()

	service := NewWeatherServiceWithBase(server.URL, server.Client())

	weather, err := service.GetForecast(context.Background(), "Kyoto", 7)
	require.NoError(t, err)
	require.NotEmpty(t, weather)
	assert.LessOrEqual(t, len(weather), 5)
	for _, day := range weather {
		assert.GreaterOrEqual(t, day.Temperature, 25.0)
		assert.LessOrEqual(t, day.Temperature, 35.0)
		assert.NotEmpty(t, day.Condition)
	}
}
