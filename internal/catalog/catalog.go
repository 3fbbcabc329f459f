// Package catalog holds the product catalog state: the full ordered list
// fetched from the shop service plus the product selected for detail view.
package catalog

import (
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/appevent"
	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/pkg/events"
)

// Model is the catalog state holder. It emits appevent.CatalogChanged on
// reload and appevent.CatalogSelected on selection.
type Model struct {
	bus      *events.Bus
	log      *zap.Logger
	items    []models.Product
	selected *models.Product
}

// New creates an empty catalog model.
func New(bus *events.Bus, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{bus: bus, log: log}
}

// SetProducts replaces the catalog wholesale. A selection whose id no
// longer resolves in the new list is dropped, so the detail view can never
// point at a product that left the catalog.
func (m *Model) SetProducts(items []models.Product) {
	m.items = make([]models.Product, len(items))
	copy(m.items, items)

	if m.selected != nil {
		if _, ok := m.ByID(m.selected.ID); !ok {
			m.log.Warn("dropping catalog selection not present after reload",
				zap.String("product_id", m.selected.ID))
			m.selected = nil
		}
	}

	m.bus.Publish(appevent.CatalogChanged, appevent.CatalogChangedData{Items: m.Products()})
}

// Products returns a copy of the current catalog.
func (m *Model) Products() []models.Product {
	items := make([]models.Product, len(m.items))
	copy(items, m.items)
	return items
}

// ByID looks up a product by id. It never fails loudly: a miss returns
// ok=false.
func (m *Model) ByID(id string) (models.Product, bool) {
	for _, p := range m.items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Select marks a product as the one shown in the detail view and emits a
// selection event. A product without an id is rejected silently.
func (m *Model) Select(p models.Product) {
	if p.ID == "" {
		m.log.Warn("ignoring selection of product without id")
		return
	}
	selected := p
	m.selected = &selected
	m.bus.Publish(appevent.CatalogSelected, appevent.CatalogSelectedData{Item: p})
}

// Selected returns the product currently shown in the detail view.
func (m *Model) Selected() (models.Product, bool) {
	if m.selected == nil {
		return models.Product{}, false
	}
	return *m.selected, true
}
