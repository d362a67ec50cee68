package handlers

import (
	"net/http"

	"multiservice-api/statuses"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe; it does not touch storage.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Multi-Service Platform API",
	})
}

// Welcome lists the service verticals.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the Multi-Service Platform API",
		"docs":      "/api/statuses",
		"health":    "/api/health",
		"verticals": []string{"grocery", "cab", "handyman"},
	})
}

// GetStatuses documents the accepted status and role values.
func GetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"vocabularies": statuses.All(),
		"description":  "Values accepted on creation. No endpoint changes a status afterwards.",
	})
}
