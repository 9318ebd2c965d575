package controllers

import (
	"CareSync/handlers"
	"CareSync/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no authentication required
	router.POST("/auth/register", ac.Handler.Register)
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/auth/change-password", ac.Handler.ChangePassword)

	// Protected routes: require a valid token
	authGroup := router.Group("/auth").Use(middlewares.RequireAuthMiddleware())
	{
		authGroup.POST("/logout", ac.Handler.Logout)
		authGroup.GET("/profile", ac.Handler.Profile)
	}
}
