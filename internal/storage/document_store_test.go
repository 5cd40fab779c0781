package storage

import (
	"context"
	"testing"

	"github.com/Antonellome/riso-server/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocumentStore(t *testing.T) (context.Context, *DocumentStore) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), NewDocumentStore(db, "sqlite")
}

func TestDocumentStore_LoadMissingKey(t *testing.T) {
	ctx, store := setupDocumentStore(t)

	_, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDocumentStore_SaveAndLoad(t *testing.T) {
	ctx, store := setupDocumentStore(t)

	require.NoError(t, store.Save(ctx, "reports", `[{"id":"r1"}]`))

	body, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"r1"}]`, body)
}

func TestDocumentStore_SaveReplacesDocument(t *testing.T) {
	ctx, store := setupDocumentStore(t)

	require.NoError(t, store.Save(ctx, "settings", `{"user":{"name":"A"}}`))
	require.NoError(t, store.Save(ctx, "settings", `{"user":{"name":"B"}}`))

	body, found, err := store.Load(ctx, "settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"user":{"name":"B"}}`, body)
}

func TestDocumentStore_KeysAreIndependent(t *testing.T) {
	ctx, store := setupDocumentStore(t)

	require.NoError(t, store.Save(ctx, "reports", `[]`))
	require.NoError(t, store.Save(ctx, "notifications", `[{"id":"n1"}]`))

	body, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, body)
}

func TestDocumentStore_Delete(t *testing.T) {
	ctx, store := setupDocumentStore(t)

	require.NoError(t, store.Save(ctx, "reports", `[]`))
	require.NoError(t, store.Delete(ctx, "reports"))

	_, found, err := store.Load(ctx, "reports")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "reports"))
}
