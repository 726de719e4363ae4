package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type ShareController struct {
	shareService services.ShareServiceInterface
}

func NewShareController(shareService services.ShareServiceInterface) *ShareController {
	return &ShareController{
		shareService: shareService,
	}
}

// BuildShareLink godoc
// @Summary Build a share URL for an itinerary
// @Description Encodes headline fields only; day plans are not carried
// @Tags Share
// @Accept json
// @Produce json
// @Param request body response_models.Itinerary true "Itinerary to share"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/share [post]
func (s *ShareController) BuildShareLink(c *gin.Context) {
	var itinerary response_models.Itinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	utils.RespondSuccess(c, gin.H{"url": s.shareService.BuildShareURL(itinerary)}, "Share link built")
}

// ParseSharedTrip godoc
// @Summary Decode a share link's query parameters into a trip seed
// @Tags Share
// @Produce json
// @Param destination query string false "Destination"
// @Param duration query int false "Days"
// @Param budget query int false "Budget"
// @Param currency query string false "Currency code"
// @Success 200 {object} utils.APIResponse
// @Router /api/share/parse [get]
func (s *ShareController) ParseSharedTrip(c *gin.Context) {
	seed := s.shareService.ParseSharedTrip(c.Request.URL.Query())
	utils.RespondSuccess(c, seed, "Shared trip parsed")
}

// ShareQRCode godoc
// @Summary Render a share URL as a QR PNG
// @Tags Share
// @Produce image/png
// @Param url query string true "Share URL"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Router /api/share/qr [get]
func (s *ShareController) ShareQRCode(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil {
		size = 256
	}

	png, err := s.shareService.ShareQRCode(c.Query("url"), size)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
