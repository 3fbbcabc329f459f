package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopfront/shopfront/internal/models"
)

// seedFile is the YAML catalog format: a top-level items list.
type seedFile struct {
	Items []models.Product `yaml:"items"`
}

// LoadSeed reads a product catalog from a YAML file.
func LoadSeed(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for i, p := range seed.Items {
		if p.ID == "" {
			return nil, fmt.Errorf("seed item %d has no id", i)
		}
	}
	return seed.Items, nil
}

// DefaultSeed returns the built-in catalog used when no seed file is
// configured.
func DefaultSeed() []models.Product {
	return []models.Product{
		{ID: "p-1", Title: "Enamel mug", Description: "Holds 350 ml of anything warm", Image: "/img/mug.png", Category: "kitchen", Price: models.Price(250)},
		{ID: "p-2", Title: "Canvas tote", Description: "Carries groceries and laptops alike", Image: "/img/tote.png", Category: "bags", Price: models.Price(490)},
		{ID: "p-3", Title: "Desk planter", Description: "A small home for a small plant", Image: "/img/planter.png", Category: "home", Price: models.Price(320)},
		{ID: "p-4", Title: "Notebook A5", Description: "Dotted pages, lies flat", Image: "/img/notebook.png", Category: "stationery", Price: models.Price(180)},
		{ID: "p-5", Title: "Sticker pack", Description: "Twelve assorted vinyl stickers", Image: "/img/stickers.png", Category: "stationery", Price: models.Price(90)},
		{ID: "p-6", Title: "Display unit", Description: "Showroom piece, cannot be purchased", Image: "/img/display.png", Category: "misc", Price: nil},
	}
}
