// Package repository provides product data access for the mock shop
// service.
package repository

import (
	"context"
	"errors"

	"github.com/shopfront/shopfront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	order    []string
	products map[string]models.Product
}

// NewInMemoryProductRepository creates an in-memory repository holding the
// given catalog. Duplicate ids keep the first entry; listing preserves
// catalog order.
func NewInMemoryProductRepository(items []models.Product) *InMemoryProductRepository {
	repo := &InMemoryProductRepository{
		order:    make([]string, 0, len(items)),
		products: make(map[string]models.Product, len(items)),
	}
	for _, p := range items {
		if _, exists := repo.products[p.ID]; exists {
			continue
		}
		repo.order = append(repo.order, p.ID)
		repo.products[p.ID] = p
	}
	return repo
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
