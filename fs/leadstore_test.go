package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store, err := fs.NewStore(t.TempDir())
	require.NoError(t, err)

	leads := []*leadgen.Lead{
		{ID: "1", Name: "Acme Dental", Phone: "(512) 555-0123", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: "2", Name: "Bright Smiles", Website: "https://brightsmiles.com"},
	}

	require.NoError(t, store.Save(context.Background(), "default", leads))

	got, err := store.Load(context.Background(), "default")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Dental", got[0].Name)
	assert.Equal(t, "(512) 555-0123", got[0].Phone)
	assert.Equal(t, "https://brightsmiles.com", got[1].Website)
}

func TestStore_LoadMissingOwnerIsEmpty(t *testing.T) {
	t.Parallel()

	store, err := fs.NewStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_OwnersAreIsolated(t *testing.T) {
	t.Parallel()

	store, err := fs.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "alpha", []*leadgen.Lead{{ID: "1", Name: "A"}}))
	require.NoError(t, store.Save(context.Background(), "beta", []*leadgen.Lead{{ID: "2", Name: "B"}}))

	alpha, err := store.Load(context.Background(), "alpha")
	require.NoError(t, err)
	require.Len(t, alpha, 1)
	assert.Equal(t, "A", alpha[0].Name)

	beta, err := store.Load(context.Background(), "beta")
	require.NoError(t, err)
	require.Len(t, beta, 1)
	assert.Equal(t, "B", beta[0].Name)
}

func TestStore_UnchangedSaveSkipsWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := fs.NewStore(dir)
	require.NoError(t, err)

	leads := []*leadgen.Lead{{ID: "1", Name: "Acme Dental"}}
	require.NoError(t, store.Save(context.Background(), "default", leads))

	path := filepath.Join(dir, "leads_default.json")
	before, err := os.Stat(path)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.Save(context.Background(), "default", leads))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "identical save should not rewrite the file")
}

func TestStore_NoPartialFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := fs.NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "default", []*leadgen.Lead{{ID: "1", Name: "A"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp file should not survive a save")
	}
}

func TestStore_InvalidOwnerKey(t *testing.T) {
	t.Parallel()

	store, err := fs.NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "../escape")
	assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))

	err = store.Save(context.Background(), "bad/key", nil)
	assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
}

func TestStore_RejectsNamelessLead(t *testing.T) {
	t.Parallel()

	store, err := fs.NewStore(t.TempDir())
	require.NoError(t, err)

	err = store.Save(context.Background(), "default", []*leadgen.Lead{{ID: "1", Phone: "(512) 555-0123"}})
	assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := fs.NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "leads_default.json"), []byte("{not json"), 0o644))

	_, err = store.Load(context.Background(), "default")
	assert.Equal(t, leadgen.EINTERNAL, leadgen.ErrorCode(err))
}
