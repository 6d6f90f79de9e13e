package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devwrapped/devwrapped/internal/services"
	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetWrapped handles GET /api/v1/wrapped/:username
func (h *AnalysisHandler) GetWrapped(c *gin.Context) {
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

	c.JSON(http.StatusOK, stats)
}

// parseYear reads the optional year query parameter. Zero means "current
// year" downstream. Responds with 400 itself when the value is malformed.
func parseYear(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2008 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
		return 0, false
	}
	return year, true
}

// respondAnalysisError maps the fatal error taxonomy onto HTTP statuses
// with one human-readable message per category.
func respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "That GitHub user does not exist."})
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "GitHub API quota exceeded. Configure a token or try again later."})
	case errors.Is(err, services.ErrAnalysisTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "The analysis took too long. Please try again."})
	case errors.Is(err, services.ErrNoRepositories):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not retrieve any repositories for this user. Please try again later."})
	case errors.Is(err, services.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "GitHub is currently unavailable. Please try again later."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong during the analysis."})
	}
}
