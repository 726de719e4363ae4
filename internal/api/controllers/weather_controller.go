package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetWeather godoc
// @Summary Get a daily forecast for a destination
// @Description Geocodes the destination and returns up to five days of weather
// @Tags Weather
// @Produce json
// @Param destination query string true "Destination name"
// @Param days query int false "Number of days" default(5)
// @Success 200 {object} response_models.WeatherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/weather [get]
func (w *WeatherController) GetWeather(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "5"))
	if err != nil || days < 1 {
		days = 5
	}

	weather, err := w.weatherService.GetForecast(c.Request.Context(), destination, days)
	if err != nil {
		if errors.Is(err, utils.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weather": weather})
}
