package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// HealthCheck reports liveness plus the environment the app was configured
// with at startup.
func HealthCheck(environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).Seconds(),
			"environment": environment,
		})
	}
}
