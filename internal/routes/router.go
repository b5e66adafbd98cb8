package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"load-analytics/internal/config"
	"load-analytics/internal/delivery/http/handler"
	"load-analytics/internal/logger"
	"load-analytics/internal/middleware"
	"load-analytics/internal/usecase/load"
	"load-analytics/internal/usecase/report"
)

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	Health() error
}

type Dependencies struct {
	DB            HealthChecker
	ReportService *report.Service
	LoadService   *load.Service
}

// SetupRoutes builds the HTTP router. Background middleware work stops when ctx is done.
func SetupRoutes(ctx context.Context, cfg *config.Config, deps Dependencies) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware in order: recovery, request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(ctx, &cfg.RateLimit))

	router.GET("/health", func(c *gin.Context) {
		if err := deps.DB.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	reportHandler := handler.NewReportHandler(deps.ReportService)
	loadHandler := handler.NewLoadHandler(deps.LoadService)

	v1 := router.Group("/api/v1")
	{
		reportHandler.RegisterRoutes(v1)
		loadHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(&cfg.JWT))
		{
			// Dispatcher routes
			dispatcher := protected.Group("")
			dispatcher.Use(middleware.DispatcherOnly())
			{
				loadHandler.RegisterDispatcherRoutes(dispatcher)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
