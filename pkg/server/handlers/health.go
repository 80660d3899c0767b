package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giapha-vn/giapha/pkg/snapstore"
)

// HealthHandler handles health and readiness probes.
type HealthHandler struct {
	store snapstore.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store snapstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// ReadinessCheck handles GET /ready. The service is ready when the
// snapshot store answers a list request.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if _, err := h.store.List(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
