package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pricelens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(indexTemplate)

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// HTML form
	router.GET("/", handler.Index)
	router.POST("/", handler.SubmitForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/compare", handler.Compare)
	}

	return router
}
