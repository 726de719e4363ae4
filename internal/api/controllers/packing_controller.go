package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type PackingController struct {
	packingService services.PackingServiceInterface
}

func NewPackingController(packingService services.PackingServiceInterface) *PackingController {
	return &PackingController{
		packingService: packingService,
	}
}

// InitPackingList godoc
// @Summary Replace a trip's packing list with categorized items
// @Tags Packing
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Param request body request_models.InitPackingListRequest true "Item labels"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips/{id}/packing [put]
func (p *PackingController) InitPackingList(c *gin.Context) {
	var req request_models.InitPackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items, err := p.packingService.InitPackingList(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Packing list initialized")
}

// ListPackingItems godoc
// @Summary List a trip's packing items
// @Tags Packing
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Router /api/trips/{id}/packing [get]
func (p *PackingController) ListPackingItems(c *gin.Context) {
	items, err := p.packingService.ListPackingItems(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Packing items retrieved")
}

// AddPackingItem godoc
// @Summary Add one item to a trip's packing list
// @Tags Packing
// @Accept json
// @Produce json
// @Param id path string true "Trip id"
// @Param request body request_models.AddPackingItemRequest true "Item label"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips/{id}/packing [post]
func (p *PackingController) AddPackingItem(c *gin.Context) {
	var req request_models.AddPackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items, err := p.packingService.AddPackingItem(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Packing item added")
}

// ToggleItem godoc
// @Summary Toggle a packing item's checked flag
// @Tags Packing
// @Produce json
// @Param id path string true "Trip id"
// @Param itemId path string true "Item id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/packing/{itemId}/toggle [post]
func (p *PackingController) ToggleItem(c *gin.Context) {
	err := p.packingService.ToggleItem(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item toggled")
}
