package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Feedback System API",
		"version": serviceVersion,
		"endpoints": gin.H{
			"submit":      "/submit",
			"submissions": "/submissions",
			"stats":       "/stats",
			"health":      "/health",
		},
	})
}
