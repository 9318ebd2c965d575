package routes

import (
	"CareSync/cache"
	"CareSync/config"
	"CareSync/controllers"
	"CareSync/handlers"
	"CareSync/middlewares"
	"CareSync/repositories"
	"CareSync/services"
	"CareSync/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, tokenMaker *utils.TokenMaker) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Resolve caller identity on every request; endpoints that need it apply
	// RequireAuthMiddleware on top.
	router.Use(middlewares.IdentityMiddleware(tokenMaker))

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(db, cache)
	patientRepo := repositories.NewPatientProfileRepository(db, cache)
	providerRepo := repositories.NewProviderProfileRepository(db, cache)
	appointmentRepo := repositories.NewAppointmentRepository(db, cache)

	userService := services.NewUserService(userRepo, patientRepo)
	patientService := services.NewPatientService(patientRepo)
	providerService := services.NewProviderService(providerRepo, userRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, providerRepo, userRepo)

	authHandler := handlers.NewAuthHandler(userService, tokenMaker)
	patientHandler := handlers.NewPatientHandler(patientService)
	providerHandler := handlers.NewProviderHandler(providerService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupAPIRoutes(router, patientHandler, providerHandler, appointmentHandler)
	controllers.SetupRootRoute(router)

	return router
}
