// Package models defines data types for the storefront demo API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item in the fabricated catalog.
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

// Validate checks field presence and limits on CreateProductRequest.
func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 100 {
		return ErrFieldTooLong("name", 100)
	}

	if len(r.Description) > 500 {
		return ErrFieldTooLong("description", 500)
	}

	if r.Price <= 0 {
		return ErrInvalidPrice
	}

	if r.Category == "" {
		return ErrMissingCategory
	}

	if len(r.Category) > 50 {
		return ErrFieldTooLong("category", 50)
	}

	return nil
}

// ProcessResult is returned by the heavy product-processing operation.
type ProcessResult struct {
	Status      string    `json:"status"`
	ProductID   uuid.UUID `json:"product_id"`
	ProcessID   uuid.UUID `json:"process_id"`
	CompletedAt time.Time `json:"completed_at"`
}
