package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillhub-api/database"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	health := "ok"
	dbStatus := "ok"
	status := http.StatusOK
	if err := database.Ping(); err != nil {
		health = "degraded"
		dbStatus = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":    health,
		"service":   "skillhub-api",
		"version":   "1.0.0",
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
