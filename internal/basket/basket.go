// Package basket holds the in-progress order's items. Membership is unique
// by product id: adding a product that is already present is a logged no-op,
// matching the detail view's add/remove toggle semantics. The item list is
// snapshotted to the configured storage slot after every successful mutation.
package basket

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/appevent"
	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/storage"
	"github.com/shopfront/shopfront/pkg/events"
)

// Model is the basket state holder. It emits appevent.BasketChanged exactly
// once per successful mutation and never on a no-op.
type Model struct {
	bus   *events.Bus
	store storage.Store
	log   *zap.Logger
	items []models.Product
}

// New creates an empty basket backed by the given snapshot store.
func New(bus *events.Bus, store storage.Store, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{bus: bus, store: store, log: log}
}

// Add appends a product to the basket. Products already present and
// products that are not for sale are rejected as logged no-ops.
func (m *Model) Add(ctx context.Context, p models.Product) {
	if p.ID == "" {
		m.log.Warn("ignoring basket add without product id")
		return
	}
	if !p.ForSale() {
		m.log.Warn("ignoring basket add of product not for sale",
			zap.String("product_id", p.ID))
		return
	}
	if m.Has(p.ID) {
		m.log.Warn("ignoring duplicate basket add",
			zap.String("product_id", p.ID))
		return
	}

	m.items = append(m.items, p)
	m.afterMutation(ctx)
}

// Remove deletes the entry whose id matches. Ids are compared after
// trimming, so a padded id from a gesture payload still resolves. Removing
// an absent id is a logged no-op and emits nothing.
func (m *Model) Remove(ctx context.Context, id string) {
	id = normalizeID(id)
	for i, item := range m.items {
		if normalizeID(item.ID) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.afterMutation(ctx)
			return
		}
	}
	m.log.Warn("basket item not found", zap.String("product_id", id))
}

// Clear empties the basket.
func (m *Model) Clear(ctx context.Context) {
	m.items = nil
	m.afterMutation(ctx)
}

// Items returns a copy of the basket contents.
func (m *Model) Items() []models.Product {
	items := make([]models.Product, len(m.items))
	copy(items, m.items)
	return items
}

// Total sums the item prices, counting "not for sale" as 0.
func (m *Model) Total() float64 {
	var total float64
	for _, item := range m.items {
		total += item.PriceValue()
	}
	return total
}

// Count returns the number of items in the basket.
func (m *Model) Count() int {
	return len(m.items)
}

// Has reports membership by normalized product id.
func (m *Model) Has(id string) bool {
	id = normalizeID(id)
	for _, item := range m.items {
		if normalizeID(item.ID) == id {
			return true
		}
	}
	return false
}

// ItemIDs returns the product ids in basket order, as sent in an order
// request.
func (m *Model) ItemIDs() []string {
	ids := make([]string, len(m.items))
	for i, item := range m.items {
		ids[i] = item.ID
	}
	return ids
}

// Restore replaces the basket with the persisted snapshot, if one exists.
// A missing or malformed snapshot leaves the basket empty without emitting.
func (m *Model) Restore(ctx context.Context) {
	items, ok, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn("failed to restore basket snapshot", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	m.items = items
	m.emitChanged()
}

func (m *Model) afterMutation(ctx context.Context) {
	// Snapshot failures are logged, not surfaced: the in-memory basket is
	// authoritative and the slot will be rewritten on the next mutation.
	if err := m.store.Save(ctx, m.items); err != nil {
		m.log.Warn("failed to persist basket snapshot", zap.Error(err))
	}
	m.emitChanged()
}

func (m *Model) emitChanged() {
	m.bus.Publish(appevent.BasketChanged, appevent.BasketChangedData{
		Items: m.Items(),
		Total: m.Total(),
		Count: m.Count(),
	})
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
