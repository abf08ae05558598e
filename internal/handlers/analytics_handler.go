package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novanest_backend/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	startups := rg.Group("/startups")
	{
		startups.POST("/:id/view", h.RecordView)
		startups.POST("/:id/pitchdeck-view", h.RecordPitchDeckView)
		startups.GET("/:id/analytics", h.GetSummary)
	}
}

func (h *AnalyticsHandler) RecordView(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.analyticsService.RecordView(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "View recorded"})
}

func (h *AnalyticsHandler) RecordPitchDeckView(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.analyticsService.RecordPitchDeckView(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pitch deck view recorded"})
}

func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
