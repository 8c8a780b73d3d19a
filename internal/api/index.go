package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexHandler serves GET /: a small JSON directory of what the demo offers,
// standing in for interactive API docs.
func indexHandler(service, version string) gin.HandlerFunc {
	endpoints := []string{
		"GET /health",
		"GET /metrics",
		"GET /api/v1/live (websocket)",
		"GET /api/v1/products",
		"POST /api/v1/products",
		"GET /api/v1/products/:id",
		"PUT /api/v1/products/:id",
		"DELETE /api/v1/products/:id",
		"POST /api/v1/products/:id/process",
		"POST /api/v1/ai/predict",
		"GET /api/v1/ai/predict/:id",
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     service,
			"version":     version,
			"description": "Demo service instrumented with RED metrics (rate, errors, duration)",
			"endpoints":   endpoints,
		})
	}
}
