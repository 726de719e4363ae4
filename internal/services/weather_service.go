package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

const weatherForecastHorizon = 5

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, destination string, days int) ([]response_models.WeatherData, error)
}

type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{
		apiKey:  os.Getenv("OPENWEATHER_API_KEY"),
		baseURL: "http://api.openweathermap.org",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWeatherServiceWithBase is used by tests to point the gateway at a stub server.
func NewWeatherServiceWithBase(baseURL string, client *http.Client) WeatherServiceInterface {
	return &WeatherService{
		apiKey:     "test",
		baseURL:    baseURL,
		httpClient: client,
	}
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResult struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
			Icon string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// GetForecast resolves the destination, then reads the 5-day forecast. Requests
// past the upstream horizon are truncated, not rejected. Every failure after
// geocoding degrades to mock data; only an unresolvable destination is an error.
func (s *WeatherService) GetForecast(ctx context.Context, destination string, days int) ([]response_models.WeatherData, error) {
	loc, err := s.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	forecast, err := s.fetchForecast(ctx, loc)
	if err != nil {
		log.Printf("Weather upstream failed, returning mock data: %v", err)
		return mockWeather(days), nil
	}

	capped := days
	if capped > weatherForecastHorizon {
		capped = weatherForecastHorizon
	}

	var weather []response_models.WeatherData
	for i := 0; i < capped; i++ {
		// Forecast entries come in 3-hour steps; every 8th entry is the next day.
		idx := i * 8
		if idx >= len(forecast.List) {
			break
		}
		entry := forecast.List[idx]

		condition, icon := "", ""
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Main
			icon = entry.Weather[0].Icon
		}

		weather = append(weather, response_models.WeatherData{
			Date:        time.Unix(entry.Dt, 0).UTC().Format("2006-01-02"),
			Temperature: math.Round(entry.Main.Temp),
			Condition:   condition,
			Humidity:    entry.Main.Humidity,
			WindSpeed:   math.Round(entry.Wind.Speed * 3.6),
			Icon:        icon,
		})
	}

	if len(weather) == 0 {
		return mockWeather(days), nil
	}
	return weather, nil
}

func (s *WeatherService) geocode(ctx context.Context, destination string) (*geoResult, error) {
	endpoint := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s",
		s.baseURL, url.QueryEscape(destination), s.apiKey)

	var results []geoResult
	if err := s.getJSON(ctx, endpoint, &results); err != nil {
		log.Printf("Geocoding failed for %q: %v", destination, err)
		return nil, utils.ErrLocationNotFound
	}
	if len(results) == 0 {
		return nil, utils.ErrLocationNotFound
	}
	return &results[0], nil
}

func (s *WeatherService) fetchForecast(ctx context.Context, loc *geoResult) (*forecastResult, error) {
	endpoint := fmt.Sprintf("%s/data/2.5/forecast?lat=%f&lon=%f&appid=%s&units=metric",
		s.baseURL, loc.Lat, loc.Lon, s.apiKey)

	var forecast forecastResult
	if err := s.getJSON(ctx, endpoint, &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (s *WeatherService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mockWeather(days int) []response_models.WeatherData {
	if days > weatherForecastHorizon {
		days = weatherForecastHorizon
	}

	conditions := []string{"Sunny", "Cloudy", "Rainy"}
	weather := make([]response_models.WeatherData, 0, days)
	for i := 0; i < days; i++ {
		weather = append(weather, response_models.WeatherData{
			Date:        time.Now().AddDate(0, 0, i).UTC().Format("2006-01-02"),
			Temperature: math.Round(25 + rand.Float64()*10),
			Condition:   conditions[rand.Intn(len(conditions))],
			Humidity:    math.Round(60 + rand.Float64()*20),
			WindSpeed:   math.Round(5 + rand.Float64()*15),
			Icon:        "01d",
		})
	}
	return weather
}
