package handlers

import (
	"net/http"
	"time"

	"github.com/devwrapped/devwrapped/internal/services"
	"github.com/gin-gonic/gin"
)

type YearsHandler struct{}

func NewYearsHandler() *YearsHandler {
	return &YearsHandler{}
}

// GetYears handles GET /api/v1/years, reporting which analysis years
// still have event data behind them.
func (h *YearsHandler) GetYears(c *gin.Context) {
	c.JSON(http.StatusOK, services.ComputeYearAvailability(time.Now()))
}
