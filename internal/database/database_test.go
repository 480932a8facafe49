package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPut(t *testing.T) {
	ctx := context.Background()
	db, err := New(filepath.Join(t.TempDir(), "poet.db"))
	require.NoError(t, err)
	defer db.Close()

	_, ok, err := db.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Put(ctx, "k", "v1"))
	require.NoError(t, db.Put(ctx, "k", "v2"))

	value, ok, err := db.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "poet.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.Put(ctx, "poems", `[]`))
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()

	value, ok, err := db.Get(ctx, "poems")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}
