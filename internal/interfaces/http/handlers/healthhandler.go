package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/version"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck checks one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler reports liveness of the service and its dependencies.
type HealthHandler struct {
	checks map[string]HealthCheck
	logger logger.Interface
}

func NewHealthHandler(checks map[string]HealthCheck, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// HealthCheck handles GET /health
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warnw("health check failed", "component", name, "error", err)
			components[name] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "healthy"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"service":    "instamakaan",
		"components": components,
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Current())
}
