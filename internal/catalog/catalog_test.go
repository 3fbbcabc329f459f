package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfront/shopfront/internal/appevent"
	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/pkg/events"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p-1", Title: "Enamel mug", Category: "kitchen", Price: models.Price(250)},
		{ID: "p-2", Title: "Canvas tote", Category: "bags", Price: models.Price(490)},
		{ID: "p-3", Title: "Display unit", Category: "misc", Price: nil},
	}
}

func TestModel_SetProductsEmitsChange(t *testing.T) {
	bus := events.New(nil)
	m := New(bus, nil)

	var got []appevent.CatalogChangedData
	events.On(bus, appevent.CatalogChanged, func(d appevent.CatalogChangedData) {
		got = append(got, d)
	})

	m.SetProducts(sampleProducts())

	require.Len(t, got, 1)
	assert.Len(t, got[0].Items, 3)
	assert.Equal(t, "p-1", got[0].Items[0].ID)
}

func TestModel_ProductsReturnsCopy(t *testing.T) {
	m := New(events.New(nil), nil)
	m.SetProducts(sampleProducts())

	items := m.Products()
	items[0].ID = "mutated"

	fresh := m.Products()
	assert.Equal(t, "p-1", fresh[0].ID, "mutating a returned slice must not touch model state")
}

func TestModel_ByID(t *testing.T) {
	m := New(events.New(nil), nil)
	m.SetProducts(sampleProducts())

	p, ok := m.ByID("p-2")
	require.True(t, ok)
	assert.Equal(t, "Canvas tote", p.Title)

	_, ok = m.ByID("missing")
	assert.False(t, ok)
}

func TestModel_Select(t *testing.T) {
	bus := events.New(nil)
	m := New(bus, nil)
	m.SetProducts(sampleProducts())

	var selections []appevent.CatalogSelectedData
	events.On(bus, appevent.CatalogSelected, func(d appevent.CatalogSelectedData) {
		selections = append(selections, d)
	})

	p, _ := m.ByID("p-1")
	m.Select(p)

	require.Len(t, selections, 1)
	assert.Equal(t, "p-1", selections[0].Item.ID)

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "p-1", got.ID)

	// A product without an id is rejected without an event.
	m.Select(models.Product{Title: "phantom"})
	assert.Len(t, selections, 1)
}

func TestModel_ReloadDropsDanglingSelection(t *testing.T) {
	m := New(events.New(nil), nil)
	m.SetProducts(sampleProducts())

	p, _ := m.ByID("p-3")
	m.Select(p)

	// Reload without p-3: the selection must not dangle.
	m.SetProducts(sampleProducts()[:2])

	_, ok := m.Selected()
	assert.False(t, ok)

	// Reload that still contains the selected id keeps it.
	m.SetProducts(sampleProducts()[:2])
	p, _ = m.ByID("p-1")
	m.Select(p)
	m.SetProducts(sampleProducts())

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "p-1", got.ID)
}
