package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// ProductService handles product catalog operations.
type ProductService struct {
	c *Client
}

// List returns one page of products with optional filtering.
func (s *ProductService) List(ctx context.Context, opts *ProductListOptions) (*ProductPage, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Page > 0 {
			params.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Category != "" {
			params.Set("category", opts.Category)
		}
	}
	var page ProductPage
	if err := s.c.get(ctx, "/api/v1/products", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Create creates a new product.
func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	var product Product
	if err := s.c.post(ctx, "/api/v1/products", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Get returns a single product by ID.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	if err := s.c.get(ctx, "/api/v1/products/"+id.String(), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces an existing product by ID.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *CreateProductRequest) (*Product, error) {
	var product Product
	if err := s.c.put(ctx, "/api/v1/products/"+id.String(), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product by ID.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := s.c.del(ctx, "/api/v1/products/"+id.String(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Process runs the heavy processing operation on a product.
func (s *ProductService) Process(ctx context.Context, id uuid.UUID) (*ProcessResult, error) {
	var result ProcessResult
	if err := s.c.post(ctx, "/api/v1/products/"+id.String()+"/process", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
