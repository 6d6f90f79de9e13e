package handlers

import (
	"fmt"
	"net/http"

	"github.com/devwrapped/devwrapped/internal/services"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	analysisService *services.AnalysisService
	exportService   *services.ExportService
}

func NewExportHandler(analysisService *services.AnalysisService, exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		analysisService: analysisService,
		exportService:   exportService,
	}
}

// GetExport handles GET /api/v1/wrapped/:username/export, streaming the
// year-in-review report as a spreadsheet download.
func (h *ExportHandler) GetExport(c *gin.Context) {
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

	workbook, err := h.exportService.Workbook(stats)
	if err != nil {
		logger.WithError(err).Error("failed to build export workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build the export file."})
		return
	}

	filename := fmt.Sprintf("%s-year-in-review-%d.xlsx", stats.Username, stats.AnalysisYear)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("failed to stream export workbook")
	}
}
