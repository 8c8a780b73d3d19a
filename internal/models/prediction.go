package models

import (
	"time"

	"github.com/google/uuid"
)

// PredictionRequest is the payload for the fake AI prediction endpoint.
type PredictionRequest struct {
	Text         string `json:"text"`
	ModelVersion string `json:"model_version,omitempty"`
}

// Validate checks field presence on PredictionRequest and applies defaults.
func (r *PredictionRequest) Validate() error {
	if r.Text == "" {
		return ErrMissingText
	}

	if r.ModelVersion == "" {
		r.ModelVersion = "v1"
	}

	return nil
}

// Prediction is the result of a fake AI prediction.
type Prediction struct {
	PredictionID   uuid.UUID `json:"prediction_id"`
	Result         string    `json:"result"`
	Confidence     float64   `json:"confidence"`
	ProcessingTime float64   `json:"processing_time"`
	Timestamp      time.Time `json:"timestamp"`
}
