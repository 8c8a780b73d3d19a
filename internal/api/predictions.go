package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/models"
)

// PredictionHandler serves the fake AI inference endpoints.
type PredictionHandler struct {
	predictor PredictionService
	log       *logrus.Logger
}

// NewPredictionHandler creates a PredictionHandler with the given predictor
// and logger.
func NewPredictionHandler(predictor PredictionService, log *logrus.Logger) *PredictionHandler {
	return &PredictionHandler{predictor: predictor, log: log}
}

// Predict handles POST /api/v1/ai/predict.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	prediction, err := h.predictor.Predict(c.Request.Context(), &req, simulateErrorFlag(c))
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, prediction)
}

// Get handles GET /api/v1/ai/predict/:id.
func (h *PredictionHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "invalid prediction id")
	if !ok {
		return
	}

	prediction, err := h.predictor.GetPrediction(c.Request.Context(), id, simulateErrorFlag(c))
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, prediction)
}

// simulateErrorFlag reads the simulate_error query parameter, accepting any
// spelling strconv understands (true, True, 1, ...). Malformed values mean
// no simulation rather than a client error.
func simulateErrorFlag(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("simulate_error", "false"))
	if err != nil {
		return false
	}

	return v
}
