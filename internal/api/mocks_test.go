package api_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/redlabs/storefront/internal/models"
)

// mockCatalog implements api.ProductCatalog for testing.
type mockCatalog struct {
	listFn    func(ctx context.Context, page, limit int, category string) (*models.ProductPage, error)
	createFn  func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	getFn     func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	updateFn  func(ctx context.Context, id uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	processFn func(ctx context.Context, id uuid.UUID) (*models.ProcessResult, error)
}

func (m *mockCatalog) ListProducts(ctx context.Context, page, limit int, category string) (*models.ProductPage, error) {
	return m.listFn(ctx, page, limit, category)
}

func (m *mockCatalog) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	return m.createFn(ctx, req)
}

func (m *mockCatalog) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return m.getFn(ctx, id)
}

func (m *mockCatalog) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockCatalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCatalog) ProcessProduct(ctx context.Context, id uuid.UUID) (*models.ProcessResult, error) {
	return m.processFn(ctx, id)
}

// mockPredictor implements api.PredictionService for testing.
type mockPredictor struct {
	predictFn func(ctx context.Context, req *models.PredictionRequest, simulateError bool) (*models.Prediction, error)
	getFn     func(ctx context.Context, id uuid.UUID, simulateError bool) (*models.Prediction, error)
}

func (m *mockPredictor) Predict(ctx context.Context, req *models.PredictionRequest, simulateError bool) (*models.Prediction, error) {
	return m.predictFn(ctx, req, simulateError)
}

func (m *mockPredictor) GetPrediction(ctx context.Context, id uuid.UUID, simulateError bool) (*models.Prediction, error) {
	return m.getFn(ctx, id, simulateError)
}
