package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/middleware"
)

// ginLogger emits one structured log line per request, after the handler
// chain has finished.
func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if route := c.FullPath(); route != "" {
			fields["route"] = route
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}

		log.WithFields(fields).Info("request")
	}
}

// parseInt parses a positive integer query parameter, falling back on
// garbage and capping at max when max is positive.
func parseInt(s string, fallback, max int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if max > 0 && v > max {
		return max
	}

	return v
}

// pathUUID parses the :id path parameter, responding 400 on anything that is
// not a UUID.
func pathUUID(c *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, message)

		return uuid.Nil, false
	}

	return id, true
}
