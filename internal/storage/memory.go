package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopfront/shopfront/internal/models"
)

// MemoryStore is an in-memory Store. It is the default when no Redis URL
// is configured, and the store used throughout tests.
type MemoryStore struct {
	mu    sync.Mutex
	value []byte
	set   bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context) ([]models.Product, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.set {
		return nil, false, nil
	}
	items, err := decodeSnapshot(m.value)
	if err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, items []models.Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = data
	m.set = true
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	m.set = false
	return nil
}

// Corrupt overwrites the stored value with a raw payload. Test hook for the
// malformed-snapshot fallback path.
func (m *MemoryStore) Corrupt(raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = raw
	m.set = true
}
