package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "CareSync", "status": "ok"})
}

// SetupRootRoute sets up routes for the application
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
