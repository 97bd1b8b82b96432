package v1

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skillhub-api/config"
	"github.com/skillhub-api/metrics"
	"github.com/skillhub-api/middleware"
	"github.com/skillhub-api/utils"
)

// NewRouter builds the gin engine with the shared middleware and every route
func NewRouter(cfg *config.Config) *gin.Engine {
	if err := utils.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	// CORS configuration for the browser front end
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}
	if cfg.AllowAllOrigins() {
		// Credentials cannot be combined with a wildcard origin
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	RegisterRoutes(router, cfg)
	return router
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router gin.IRouter, cfg *config.Config) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Training data endpoints, protected only when auth is enabled
	protected := router.Group("")
	protected.Use(middleware.OptionalAuth(cfg.AuthEnabled))

	NewParticipantController().RegisterRoutes(protected)
	NewClassController().RegisterRoutes(protected)
	NewEnrollmentController().RegisterRoutes(protected)
}
