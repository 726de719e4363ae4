package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary
// @Description Build a structured plan for a destination from trip parameters
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} response_models.Itinerary
// @Failure 500 {object} map[string]string
// @Router /api/generate-itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate itinerary. Please try again."})
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error generating itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate itinerary. Please try again."})
		return
	}

	c.JSON(http.StatusOK, itinerary)
}
