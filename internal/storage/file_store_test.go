package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) (context.Context, *FileStore, string) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	return context.Background(), store, dir
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	ctx, store, _ := setupFileStore(t)

	_, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	ctx, store, dir := setupFileStore(t)

	require.NoError(t, store.Save(ctx, "reports", `[{"id":"r1"}]`))

	body, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"r1"}]`, body)

	// One JSON file per key, no leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reports.json", entries[0].Name())
}

func TestFileStore_SaveReplacesDocument(t *testing.T) {
	ctx, store, _ := setupFileStore(t)

	require.NoError(t, store.Save(ctx, "settings", `{"a":1}`))
	require.NoError(t, store.Save(ctx, "settings", `{"a":2}`))

	body, _, err := store.Load(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, body)
}

func TestFileStore_Delete(t *testing.T) {
	ctx, store, dir := setupFileStore(t)

	require.NoError(t, store.Save(ctx, "reports", `[]`))
	require.NoError(t, store.Delete(ctx, "reports"))

	_, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoFileExists(t, filepath.Join(dir, "reports.json"))

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "reports"))
}
