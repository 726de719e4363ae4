package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type TripController struct {
	tripService   services.TripServiceInterface
	exportService services.ExportServiceInterface
}

func NewTripController(tripService services.TripServiceInterface, exportService services.ExportServiceInterface) *TripController {
	return &TripController{
		tripService:   tripService,
		exportService: exportService,
	}
}

// SaveTrip godoc
// @Summary Save a generated itinerary as a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Trip saved")
}

// ListTrips godoc
// @Summary List the current user's saved trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips retrieved")
}

// GetTrip godoc
// @Summary Get one saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip retrieved")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Router /api/trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}

// ToggleFavorite godoc
// @Summary Toggle a trip's favorite flag
// @Tags Trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/favorite [post]
func (t *TripController) ToggleFavorite(c *gin.Context) {
	if err := t.tripService.ToggleFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite toggled")
}

// MigrateTrips godoc
// @Summary Move a guest's local trips into the cloud store
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.MigrateTripsRequest true "Guest identity"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips/migrate [post]
func (t *TripController) MigrateTrips(c *gin.Context) {
	var req request_models.MigrateTripsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	migrated, err := t.tripService.MigrateGuestTrips(c.Request.Context(), c.GetString("user_id"), req.GuestID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"migrated": migrated}, "Trips migrated")
}

// SyncStatus godoc
// @Summary Report saved-trip count and last sync time
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/trips/sync-status [get]
func (t *TripController) SyncStatus(c *gin.Context) {
	status, err := t.tripService.SyncStatus(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Sync status retrieved")
}

// ExportTrip godoc
// @Summary Export a saved trip's itinerary as a PDF
// @Tags Trips
// @Produce application/pdf
// @Param id path string true "Trip id"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/export [get]
func (t *TripController) ExportTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := t.exportService.ExportTripPDF(c.Request.Context(), trip)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=itinerary.pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
