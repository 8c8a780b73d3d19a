package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/httputil"
	"github.com/redlabs/storefront/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeValidationError = "validation_error"
	ErrCodeNotFound        = "not_found"
	ErrCodeConflict        = "conflict"
	ErrCodeOverloaded      = "overloaded"
	ErrCodeTimeout         = "timeout"
	ErrCodeSimulated       = "simulated_error"
	ErrCodeInternalError   = "internal_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps catalog and predictor failures onto the HTTP
// statuses the dashboards chart. Unknown errors are logged and surface
// as plain 500s.
func respondServiceError(c *gin.Context, log *logrus.Logger, err error) {
	var simErr *models.SimulatedError

	switch {
	case errors.Is(err, models.ErrProductNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "Product not found")
	case errors.Is(err, models.ErrPredictionNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "Prediction not found")
	case errors.Is(err, models.ErrProductConflict):
		respondError(c, http.StatusConflict, ErrCodeConflict, "Product was modified by another request")
	case errors.Is(err, models.ErrPriceTooHigh):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "Price exceeds maximum allowed value")
	case errors.Is(err, models.ErrOverloaded):
		respondError(c, http.StatusServiceUnavailable, ErrCodeOverloaded, "Service temporarily overloaded. Please reduce page size.")
	case errors.Is(err, models.ErrProcessTimeout):
		respondError(c, http.StatusGatewayTimeout, ErrCodeTimeout, "Processing timed out")
	case errors.Is(err, models.ErrCatalogFault):
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error during deletion")
	case errors.As(err, &simErr):
		respondError(c, simErr.Status, ErrCodeSimulated, simErr.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusServiceUnavailable, ErrCodeInternalError, "request aborted")
	default:
		log.WithError(err).Error("unhandled service error")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
