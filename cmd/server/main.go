package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devwrapped/devwrapped/internal/githubclient"
	"github.com/devwrapped/devwrapped/internal/handlers"
	"github.com/devwrapped/devwrapped/internal/middleware"
	"github.com/devwrapped/devwrapped/internal/services"
	"github.com/devwrapped/devwrapped/pkg/config"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init()
	gin.SetMode(cfg.Server.Mode)

	fetchTimeout := time.Duration(cfg.Analysis.FetchTimeout) * time.Second

	// Initialize dependencies
	client := githubclient.New(cfg.GitHub.APIBaseURL, cfg.GitHub.Token)
	eventCollector := services.NewEventCollectorService(client, fetchTimeout, cfg.Analysis.EventPageLimit)
	repoCatalog := services.NewRepoCatalogService(client, fetchTimeout, cfg.Analysis.RepoPageLimit)
	reconciler := services.NewCommitReconcilerService(
		cfg.GitHub.APIBaseURL,
		cfg.GitHub.Token,
		time.Duration(cfg.Analysis.SearchTimeout)*time.Second,
	)
	analysisService := services.NewAnalysisService(
		client,
		eventCollector,
		repoCatalog,
		reconciler,
		time.Duration(cfg.Analysis.GlobalBudget)*time.Second,
		fetchTimeout,
	)
	insightService := services.NewInsightService(cfg.Insights.Endpoint, cfg.Insights.APIKey, cfg.Insights.Model)
	exportService := services.NewExportService()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogging())

	setupRoutes(router, analysisService, insightService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down server...")
	logger.Infof("Server stopped")
}

func setupRoutes(router *gin.Engine, analysisService *services.AnalysisService, insightService *services.InsightService, exportService *services.ExportService) {
	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	insightsHandler := handlers.NewInsightsHandler(analysisService, insightService)
	exportHandler := handlers.NewExportHandler(analysisService, exportService)
	yearsHandler := handlers.NewYearsHandler()
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	api := router.Group("/api/v1")
	{
		api.GET("/wrapped/:username", analysisHandler.GetWrapped)
		api.GET("/wrapped/:username/insights", insightsHandler.GetInsights)
		api.GET("/wrapped/:username/export", exportHandler.GetExport)
		api.GET("/years", yearsHandler.GetYears)
	}

	router.GET("/health", healthHandler.Health)
	router.NoRoute(notFoundHandler.NotFound)
}
