package database

import (
	"context"
	"path/filepath"
	"testing"

	"ripple/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataDir:            dir,
		DBPath:             filepath.Join(dir, "ripple.db"),
		DBSchemaMode:       SchemaModeSQL,
		FeedRefreshSeconds: 5,
		Env:                "test",
	}
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	store := NewStore(testConfig(t))
	ctx := context.Background()

	db1, err := store.Open(ctx)
	require.NoError(t, err)
	require.NotNil(t, db1)

	db2, err := store.Open(ctx)
	require.NoError(t, err)
	assert.Same(t, db1, db2)
}

func TestStore_DBNilBeforeOpen(t *testing.T) {
	store := NewStore(testConfig(t))
	assert.Nil(t, store.DB())

	_, err := store.Open(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, store.DB())
}

func TestStore_ReopenAfterClose(t *testing.T) {
	store := NewStore(testConfig(t))
	ctx := context.Background()

	_, err := store.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.Nil(t, store.DB())

	db, err := store.Open(ctx)
	require.NoError(t, err)
	assert.NotNil(t, db)
}
