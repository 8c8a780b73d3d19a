package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/models"
)

const (
	// predictErrorChance is the probability of an injected failure on
	// Predict when error simulation is requested.
	predictErrorChance = 0.5

	// lookupMissChance is the probability of an injected miss on
	// GetPrediction when error simulation is requested.
	lookupMissChance = 0.3

	// resultPrefixLen caps how much of the input text the fabricated
	// result echoes back.
	resultPrefixLen = 50
)

// simulatedStatuses are the statuses Predict draws from when injecting a
// failure.
var simulatedStatuses = []int{400, 401, 403, 500, 503}

// Predictor fabricates AI inference results.
type Predictor struct {
	sim *Simulator
	log *logrus.Logger
}

// NewPredictor creates a Predictor.
func NewPredictor(sim *Simulator, log *logrus.Logger) *Predictor {
	return &Predictor{sim: sim, log: log}
}

// Predict fabricates an inference result after a long, highly variable
// sleep. With simulateError set, roughly half the calls fail with a random
// status from simulatedStatuses.
func (p *Predictor) Predict(ctx context.Context, req *models.PredictionRequest, simulateError bool) (*models.Prediction, error) {
	seconds, err := p.sim.sleep(ctx, bandPredict)
	if err != nil {
		return nil, err
	}

	if simulateError && p.sim.chance(predictErrorChance) {
		status := simulatedStatuses[p.sim.intN(len(simulatedStatuses))]

		p.log.WithFields(logrus.Fields{
			"status":        status,
			"model_version": req.ModelVersion,
		}).Debug("predictor.injected_error")

		return nil, &models.SimulatedError{Status: status}
	}

	text := []rune(req.Text)
	if len(text) > resultPrefixLen {
		text = text[:resultPrefixLen]
	}

	return &models.Prediction{
		PredictionID:   uuid.New(),
		Result:         fmt.Sprintf("Processed: %s...", string(text)),
		Confidence:     p.sim.uniform(0.7, 1.0),
		ProcessingTime: seconds,
		Timestamp:      time.Now().UTC(),
	}, nil
}

// GetPrediction fabricates a cached inference result. With simulateError
// set, roughly a third of the calls miss.
func (p *Predictor) GetPrediction(ctx context.Context, id uuid.UUID, simulateError bool) (*models.Prediction, error) {
	seconds, err := p.sim.sleep(ctx, bandLookup)
	if err != nil {
		return nil, err
	}

	if simulateError && p.sim.chance(lookupMissChance) {
		return nil, models.ErrPredictionNotFound
	}

	return &models.Prediction{
		PredictionID:   id,
		Result:         "Cached prediction result",
		Confidence:     0.95,
		ProcessingTime: seconds,
		Timestamp:      time.Now().UTC(),
	}, nil
}
