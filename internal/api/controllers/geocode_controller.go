package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type GeocodeController struct {
	geocodeService services.GeocodeServiceInterface
}

func NewGeocodeController(geocodeService services.GeocodeServiceInterface) *GeocodeController {
	return &GeocodeController{
		geocodeService: geocodeService,
	}
}

func (g *GeocodeController) ResolveHandler(c *gin.Context) {
	var req request_models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := g.geocodeService.Resolve(c.Request.Context(), req.Title, req.Subtitle, req.Destination)
	utils.RespondSuccess(c, result, "Place resolved")
}

func (g *GeocodeController) ResolveBatchHandler(c *gin.Context) {
	var req request_models.ResolveBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	results := g.geocodeService.ResolveAll(c.Request.Context(), req.Places, req.Destination)
	utils.RespondSuccess(c, results, "Places resolved")
}
