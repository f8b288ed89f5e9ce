// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetease/backend/internal/application/adapter"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func() bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    HealthCheck
	redisHealthChecker HealthCheck
	clock              adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// redisHealthChecker may be nil when the rate limiter runs in-process.
func NewHealthController(dbHealthChecker, redisHealthChecker HealthCheck, clock adapter.Clock) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		redisHealthChecker: redisHealthChecker,
		clock:              clock,
	}
}

// Check handles GET /health requests.
// The API is unavailable without its database; Redis only degrades rate limiting.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  dependencyStatus(h.dbHealthChecker),
		Redis:     dependencyStatus(h.redisHealthChecker),
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	}

	statusCode := http.StatusOK
	switch {
	case response.Database != "connected":
		response.Status = "unavailable"
		statusCode = http.StatusServiceUnavailable
	case response.Redis == "disconnected":
		response.Status = "degraded"
	}

	c.JSON(statusCode, response)
}

func dependencyStatus(check HealthCheck) string {
	if check == nil {
		return "disabled"
	}
	if check() {
		return "connected"
	}
	return "disconnected"
}
