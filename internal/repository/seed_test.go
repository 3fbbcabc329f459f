package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `
items:
  - id: p-1
    title: Enamel mug
    category: kitchen
    price: 250
  - id: p-2
    title: Display unit
    category: misc
    price: null
`)

	items, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Enamel mug", items[0].Title)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, 250.0, *items[0].Price)
	assert.Nil(t, items[1].Price, "null price must parse as not-for-sale")
}

func TestLoadSeed_MissingID(t *testing.T) {
	path := writeSeed(t, `
items:
  - title: Orphan item
    price: 100
`)

	_, err := LoadSeed(path)
	assert.Error(t, err)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
