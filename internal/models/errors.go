package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingName     = errors.New("name is required")
	ErrMissingCategory = errors.New("category is required")
	ErrMissingText     = errors.New("text is required")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)

// Sentinel errors for the simulated failure modes the catalog injects.
// Handlers map these onto the HTTP statuses the dashboards chart.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductConflict    = errors.New("product was modified by another request")
	ErrPriceTooHigh       = errors.New("price exceeds maximum allowed value")
	ErrOverloaded         = errors.New("service temporarily overloaded")
	ErrProcessTimeout     = errors.New("processing timed out")
	ErrCatalogFault       = errors.New("internal catalog fault")
	ErrPredictionNotFound = errors.New("prediction not found")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}

// SimulatedError is an injected failure carrying the HTTP status the API
// should surface. Produced only when a caller opts into error simulation.
type SimulatedError struct {
	Status int
}

func (e *SimulatedError) Error() string {
	return fmt.Sprintf("simulated error with status code %d", e.Status)
}
