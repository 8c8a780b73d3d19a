// Package api provides the HTTP surface of the storefront demo.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	log       *logrus.Logger
	service   string
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(log *logrus.Logger, service, version string) *HealthHandler {
	return &HealthHandler{
		log:       log,
		service:   service,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Service       string  `json:"service"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /health. The demo has no backing stores to probe, so
// a reachable process is a healthy process.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Service:       h.service,
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
