package client

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// PredictionService handles fake AI inference operations.
type PredictionService struct {
	c *Client
}

// Predict requests an inference result. With simulateError set, the server
// injects a random 4xx/5xx on roughly half the calls.
func (s *PredictionService) Predict(ctx context.Context, req *PredictionRequest, simulateError bool) (*Prediction, error) {
	params := simulateErrorParams(simulateError)
	var prediction Prediction
	if err := s.c.post(ctx, "/api/v1/ai/predict", params, req, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// Get returns a cached prediction by ID. With simulateError set, the server
// misses on roughly a third of the calls.
func (s *PredictionService) Get(ctx context.Context, id uuid.UUID, simulateError bool) (*Prediction, error) {
	params := simulateErrorParams(simulateError)
	var prediction Prediction
	if err := s.c.get(ctx, "/api/v1/ai/predict/"+id.String(), params, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

func simulateErrorParams(simulateError bool) url.Values {
	if !simulateError {
		return nil
	}
	return url.Values{"simulate_error": []string{"true"}}
}
