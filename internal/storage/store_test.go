package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), logging.Discard())
	require.NoError(t, err)
	return s
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	got := Load[[]record](context.Background(), s, "missing.json")
	assert.Empty(t, got)
}

func TestLoad_CorruptFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path("bad.json"), []byte("{not json"), 0o660))

	got := Load[[]record](context.Background(), s, "bad.json")
	assert.Empty(t, got)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := []record{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
	require.NoError(t, s.Save(ctx, "records.json", want))

	got := Load[[]record](ctx, s, "records.json")
	assert.Equal(t, want, got)
}

func TestSave_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "records.json", []record{{ID: 1, Name: "old"}}))
	require.NoError(t, s.Save(ctx, "records.json", []record{{ID: 2, Name: "new"}}))

	got := Load[[]record](ctx, s, "records.json")
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)

	leftovers, err := filepath.Glob(s.Path("*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestSave_FailureMatchesPersistenceError(t *testing.T) {
	s := newTestStore(t)

	// Functions cannot be marshalled to JSON.
	err := s.Save(context.Background(), "records.json", func() {})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorPersistence))
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewStore(dir, logging.Discard())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
