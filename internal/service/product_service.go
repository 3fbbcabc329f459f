// Package service holds the mock shop's business logic.
package service

import (
	"context"

	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the full catalog.
func (s *ProductService) ListProducts(ctx context.Context) (*models.ProductList, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ProductList{Total: len(items), Items: items}, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
