package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type TemplateController struct {
	templateService services.TemplateServiceInterface
}

func NewTemplateController(templateService services.TemplateServiceInterface) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

// ListTemplates godoc
// @Summary List all trip templates
// @Tags Templates
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/templates [get]
func (t *TemplateController) ListTemplates(c *gin.Context) {
	utils.RespondSuccess(c, t.templateService.ListTemplates(), "Templates retrieved")
}

// GetTemplate godoc
// @Summary Get one trip template
// @Tags Templates
// @Produce json
// @Param id path string true "Template id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/templates/{id} [get]
func (t *TemplateController) GetTemplate(c *gin.Context) {
	template, err := t.templateService.GetTemplate(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template retrieved")
}

// ApplyTemplate godoc
// @Summary Fill a trip request from a template's defaults
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template id"
// @Param request body request_models.ApplyTemplateRequest false "Overrides"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/templates/{id}/apply [post]
func (t *TemplateController) ApplyTemplate(c *gin.Context) {
	var overrides request_models.ApplyTemplateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&overrides); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	request, err := t.templateService.ApplyTemplate(c.Param("id"), overrides)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Template applied")
}
