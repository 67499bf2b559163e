package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness checks.
type HealthHandler struct{}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// HealthCheck returns "ok".
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
