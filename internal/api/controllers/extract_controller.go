package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ExtractController struct {
	metadataService services.MetadataServiceInterface
	mergerService   services.ItineraryMergerInterface
}

func NewExtractController(
	metadataService services.MetadataServiceInterface,
	mergerService services.ItineraryMergerInterface,
) *ExtractController {
	return &ExtractController{
		metadataService: metadataService,
		mergerService:   mergerService,
	}
}

func (e *ExtractController) ExtractMetadataHandler(c *gin.Context) {
	var req request_models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meta := e.metadataService.ExtractTripMetadata(joinTranscript(req.Messages))
	utils.RespondSuccess(c, meta, "Trip metadata extracted")
}

func (e *ExtractController) ExtractItineraryHandler(c *gin.Context) {
	var req request_models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meta := e.metadataService.ExtractTripMetadata(joinTranscript(req.Messages))
	days := e.mergerService.MergeItineraries(req.Messages, meta.Duration)
	utils.RespondSuccess(c, days, "Itinerary extracted")
}

func joinTranscript(messages []request_models.ChatMessage) string {
	var parts []string
	for _, msg := range messages {
		parts = append(parts, msg.Parts...)
	}
	return strings.Join(parts, "\n")
}
