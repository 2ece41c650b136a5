package router

import (
	"github.com/NomadCrew/travel-timeline-backend/config"
	"github.com/NomadCrew/travel-timeline-backend/handlers"
	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	TripHandler     *handlers.TripHandler
	TimelineHandler *handlers.TimelineHandler
	HealthHandler   *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	log := logger.GetLogger()
	r := gin.New()
	r.Use(gin.Recovery())

	if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		log.Warnw("Invalid trusted proxies, ignoring X-Forwarded-For", "proxies", deps.Config.Server.TrustedProxies, "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Versioned API Group (v1)
	v1 := r.Group("/v1")
	{
		tripRoutes := v1.Group("/trips")
		{
			tripRoutes.GET("", deps.TripHandler.ListTripsHandler)
			tripRoutes.POST("", deps.TripHandler.CreateTripHandler)
			tripRoutes.GET("/compare", deps.TripHandler.CompareTripsHandler)
			tripRoutes.GET("/:id", deps.TripHandler.GetTripHandler)
		}

		v1.POST("/compare/toggle", deps.TripHandler.ToggleCompareHandler)
		v1.GET("/stats", deps.TripHandler.StatsHandler)
		v1.GET("/insights", deps.TripHandler.InsightsHandler)

		v1.GET("/timeline", deps.TimelineHandler.GetTimelineHandler)
		v1.GET("/preferences", deps.TimelineHandler.GetPreferencesHandler)
		v1.PUT("/preferences", deps.TimelineHandler.UpdatePreferencesHandler)
	}

	return r
}
