package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProductRepository(DefaultSeed())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "p-1", all[0].ID, "listing must preserve seed order")

	p, err := repo.GetByID(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, "Canvas tote", p.Title)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
