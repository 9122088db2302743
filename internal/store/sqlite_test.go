package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glamstack/glamql/internal/store"
	"github.com/glamstack/glamql/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s := store.NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, s.Open(":memory:"))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoadInventory(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	items := []string{"boots", "jacket", "visor"}
	require.NoError(t, s.SaveInventory(ctx, "ada", items))

	got, err := s.LoadInventory(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSaveInventoryReplacesPreviousSnapshot(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInventory(ctx, "ada", []string{"jacket", "visor"}))
	require.NoError(t, s.SaveInventory(ctx, "ada", []string{"boots"}))

	got, err := s.LoadInventory(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"boots"}, got)
}

func TestSaveInventoryLowerCasesItems(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInventory(ctx, "ada", []string{"Jacket", "BOOTS"}))

	got, err := s.LoadInventory(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"jacket", "boots"}, got)
}

func TestLoadInventoryForUnknownProfile(t *testing.T) {
	s := openStore(t)

	got, err := s.LoadInventory(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveEmptyInventory(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInventory(ctx, "ada", []string{"jacket"}))
	require.NoError(t, s.SaveInventory(ctx, "ada", nil))

	got, err := s.LoadInventory(ctx, "ada")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProfiles(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInventory(ctx, "grace", []string{"ribbon dress"}))
	require.NoError(t, s.SaveInventory(ctx, "ada", []string{"jacket"}))

	names, err := s.Profiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada", "grace"}, names)
}

func TestOperationsBeforeOpen(t *testing.T) {
	s := store.NewSQLiteStore(nil)
	ctx := context.Background()

	require.Error(t, s.SaveInventory(ctx, "ada", nil))
	_, err := s.LoadInventory(ctx, "ada")
	require.Error(t, err)
	_, err = s.Profiles(ctx)
	require.Error(t, err)
}

func TestOpenCreatesFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glamql.db")
	s := store.NewSQLiteStore(nil)
	require.NoError(t, s.Open(path))
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	require.NoError(t, s.SaveInventory(ctx, "ada", []string{"jacket"}))

	got, err := s.LoadInventory(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"jacket"}, got)
}
