package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/redlabs/storefront/internal/models"
)

// ProductCatalog defines the product operations ProductHandler depends on.
type ProductCatalog interface {
	ListProducts(ctx context.Context, page, limit int, category string) (*models.ProductPage, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ProcessProduct(ctx context.Context, id uuid.UUID) (*models.ProcessResult, error)
}

// PredictionService defines the inference operations PredictionHandler
// depends on.
type PredictionService interface {
	Predict(ctx context.Context, req *models.PredictionRequest, simulateError bool) (*models.Prediction, error)
	GetPrediction(ctx context.Context, id uuid.UUID, simulateError bool) (*models.Prediction, error)
}
