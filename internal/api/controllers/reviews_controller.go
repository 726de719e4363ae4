package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
	}
}

// GetReviews godoc
// @Summary Get an aggregate rating for a place
// @Description Looks the place up in the places API, mock data on upstream failure
// @Tags Reviews
// @Produce json
// @Param place query string true "Place name"
// @Param location query string false "Location context"
// @Success 200 {object} response_models.ReviewData
// @Failure 400 {object} map[string]string
// @Router /api/reviews [get]
func (r *ReviewsController) GetReviews(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Place is required"})
		return
	}

	rating, err := r.reviewService.GetRating(c.Request.Context(), place, c.Query("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, rating)
}
