package client

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in the storefront catalog.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// CreateProductRequest is the payload for creating or updating a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// ProductListOptions filters and paginates product listings.
type ProductListOptions struct {
	Page     int
	Limit    int
	Category string
}

// DeleteResponse is returned by product deletion.
type DeleteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProcessResult is returned by the heavy product-processing operation.
type ProcessResult struct {
	Status      string    `json:"status"`
	ProductID   uuid.UUID `json:"product_id"`
	ProcessID   uuid.UUID `json:"process_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// PredictionRequest is the payload for the fake AI prediction endpoint.
type PredictionRequest struct {
	Text         string `json:"text"`
	ModelVersion string `json:"model_version,omitempty"`
}

// Prediction is the result of a fake AI prediction.
type Prediction struct {
	PredictionID   uuid.UUID `json:"prediction_id"`
	Result         string    `json:"result"`
	Confidence     float64   `json:"confidence"`
	ProcessingTime float64   `json:"processing_time"`
	Timestamp      time.Time `json:"timestamp"`
}

// HealthResponse is the liveness check response.
type HealthResponse struct {
	Status        string  `json:"status"`
	Service       string  `json:"service"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
