// Package catalog fabricates the product and prediction workload behind the
// demo API. Nothing is persisted: every operation invents its result, sleeps
// through a latency band, and injects documented failure modes keyed off the
// request UUID so dashboards always have interesting traffic to show.
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
	// maxPrice triggers the simulated validation failure on create.
	maxPrice = 1000

	// catalogTotal is the advertised size of the fabricated catalog.
	catalogTotal = 100
)

// Failure triggers: the first hex digit of a product UUID selects a
// deterministic outcome, so curl and the load generator can provoke each
// error on demand.
const (
	digitNotFound = '0'
	digitConflict = '1'
	digitTimeout  = '5'
	digitFault    = '9'
)

// Service fabricates product data.
type Service struct {
	sim *Simulator
	log *logrus.Logger
}

// NewService creates a catalog Service.
func NewService(sim *Simulator, log *logrus.Logger) *Service {
	return &Service{sim: sim, log: log}
}

// ListProducts fabricates one page of products. Requesting deep pages at
// large limits (page > 10 and limit > 50) trips the simulated overload.
func (s *Service) ListProducts(ctx context.Context, page, limit int, category string) (*models.ProductPage, error) {
	if _, err := s.sim.sleep(ctx, bandRead); err != nil {
		return nil, err
	}

	if page > 10 && limit > 50 {
		return nil, models.ErrOverloaded
	}

	if category == "" {
		category = "electronics"
	}

	now := time.Now().UTC()
	items := make([]models.Product, 0, limit)
	for i := 0; i < limit; i++ {
		items = append(items, models.Product{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("Product %d", i),
			Description: "Sample product",
			Price:       99.99,
			Category:    category,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return &models.ProductPage{
		Items: items,
		Total: catalogTotal,
		Page:  page,
		Limit: limit,
	}, nil
}

// CreateProduct pretends to persist a new product. Prices above maxPrice
// trip the simulated validation failure.
func (s *Service) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if _, err := s.sim.sleep(ctx, bandWrite); err != nil {
		return nil, err
	}

	if req.Price > maxPrice {
		return nil, models.ErrPriceTooHigh
	}

	product := fromRequest(uuid.New(), req)

	s.log.WithFields(logrus.Fields{
		"product_id": product.ID,
		"category":   product.Category,
	}).Debug("catalog.create")

	return product, nil
}

// GetProduct fabricates a single product. IDs starting with '0' simulate a
// missing row.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if _, err := s.sim.sleep(ctx, bandRead); err != nil {
		return nil, err
	}

	if failureDigit(id) == digitNotFound {
		return nil, models.ErrProductNotFound
	}

	now := time.Now().UTC()
	return &models.Product{
		ID:          id,
		Name:        "Sample Product",
		Description: "Detailed description",
		Price:       199.99,
		Category:    "electronics",
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateProduct pretends to update a product. '0' simulates a missing row,
// '1' a concurrent-modification conflict.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	if _, err := s.sim.sleep(ctx, bandWrite); err != nil {
		return nil, err
	}

	switch failureDigit(id) {
	case digitNotFound:
		return nil, models.ErrProductNotFound
	case digitConflict:
		return nil, models.ErrProductConflict
	}

	return fromRequest(id, req), nil
}

// DeleteProduct pretends to delete a product. '0' simulates a missing row,
// '9' a backend fault mid-delete.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.sim.sleep(ctx, bandWrite); err != nil {
		return err
	}

	switch failureDigit(id) {
	case digitNotFound:
		return models.ErrProductNotFound
	case digitFault:
		return models.ErrCatalogFault
	}

	s.log.WithField("product_id", id).Debug("catalog.delete")

	return nil
}

// ProcessProduct runs the fake heavy operation. '0' simulates a missing row,
// '5' an upstream timeout.
func (s *Service) ProcessProduct(ctx context.Context, id uuid.UUID) (*models.ProcessResult, error) {
	if _, err := s.sim.sleep(ctx, bandHeavy); err != nil {
		return nil, err
	}

	switch failureDigit(id) {
	case digitNotFound:
		return nil, models.ErrProductNotFound
	case digitTimeout:
		return nil, models.ErrProcessTimeout
	}

	result := &models.ProcessResult{
		Status:      "success",
		ProductID:   id,
		ProcessID:   uuid.New(),
		CompletedAt: time.Now().UTC(),
	}

	s.log.WithFields(logrus.Fields{
		"product_id": id,
		"process_id": result.ProcessID,
	}).Debug("catalog.process")

	return result, nil
}

// failureDigit returns the first hex digit of the id in its canonical string
// form, which selects the deterministic failure modes above.
func failureDigit(id uuid.UUID) byte {
	return id.String()[0]
}

func fromRequest(id uuid.UUID, req *models.CreateProductRequest) *models.Product {
	now := time.Now().UTC()

	return &models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
