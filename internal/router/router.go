package router

import (
	"github.com/gin-gonic/gin"

	"policyparse/internal/handler"
	"policyparse/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(extractionH *handler.ExtractionHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	extractions := v1.Group("/extractions")
	extractions.POST("", extractionH.Create)
	extractions.POST("/upload", extractionH.Upload)
	extractions.GET("", extractionH.List)
	extractions.GET("/export/csv", extractionH.ExportCSV)
	extractions.GET("/export/xlsx", extractionH.ExportXLSX)
	extractions.GET("/:id", extractionH.GetByID)
	extractions.GET("/:id/validation", extractionH.GetValidation)

	return r
}
