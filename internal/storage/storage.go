// Package storage persists the basket snapshot in a single named slot,
// the storefront's only durable state. The snapshot is written after every
// basket mutation and read once at startup.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopfront/shopfront/internal/models"
)

// Store reads and writes the basket snapshot.
//
// Load returns ok=false when no usable snapshot exists; a malformed stored
// value counts as absent rather than an error, so a schema change degrades
// to an empty basket instead of breaking startup.
type Store interface {
	Load(ctx context.Context) (items []models.Product, ok bool, err error)
	Save(ctx context.Context, items []models.Product) error
	Clear(ctx context.Context) error
}

// decodeSnapshot parses a stored snapshot and checks its shape: every entry
// must carry a product id. Anything else is treated as a corrupt slot.
func decodeSnapshot(data []byte) ([]models.Product, error) {
	var items []models.Product
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == "" {
			return nil, errors.New("snapshot entry without product id")
		}
	}
	return items, nil
}
