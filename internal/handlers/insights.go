package handlers

import (
	"net/http"

	"github.com/devwrapped/devwrapped/internal/services"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	analysisService *services.AnalysisService
	insightService  *services.InsightService
}

func NewInsightsHandler(analysisService *services.AnalysisService, insightService *services.InsightService) *InsightsHandler {
	return &InsightsHandler{
		analysisService: analysisService,
		insightService:  insightService,
	}
}

// GetInsights handles GET /api/v1/wrapped/:username/insights. It runs the
// analysis, then forwards the stats to the narrative generator and
// returns both together.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	username := c.Param("username")
	year, ok := parseYear(c)
	if !ok {
		return
	}

	stats, err := h.analysisService.Analyze(c.Request.Context(), username, year)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	insights, err := h.insightService.Generate(c.Request.Context(), stats)
	if err != nil {
		logger.WithError(err).Warn("insight generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "The narrative generator is unavailable. Your stats are still ready."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":    stats,
		"insights": insights,
	})
}
