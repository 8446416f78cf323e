package main

import (
	"log"

	"github.com/Aashish23092/gas-bill-compare/config"
	"github.com/Aashish23092/gas-bill-compare/handler"
	"github.com/Aashish23092/gas-bill-compare/metrics"
	"github.com/Aashish23092/gas-bill-compare/middleware"
	"github.com/Aashish23092/gas-bill-compare/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	var onMissingField service.FieldObserver
	if cfg.MetricsEnabled {
		metrics.Init()
		onMissingField = metrics.IncMissingField
	}

	// Initialize PDF processor and service layer
	pdfProcessor := service.NewPDFProcessor()
	compareService := service.NewCompareService(pdfProcessor, onMissingField)

	// Initialize handler layer
	comparisonHandler := handler.NewComparisonHandler(compareService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	// Two uploads per request
	router.MaxMultipartMemory = 2 * cfg.MaxFileSize

	handler.RegisterRoutes(router, comparisonHandler)
	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Start server
	log.Printf("Starting Gas Bill Compare on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
