package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck provides a simple health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Index returns the service banner
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "MailSpectre",
		"version":     "1.0.0",
		"status":      "running",
		"description": "Email validation API",
	})
}
