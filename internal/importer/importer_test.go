package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r.Get("mint"))
	assert.Equal(t, "mint", r.Get("MINT").Format(), "lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&MintParser{})
	assert.Panics(t, func() { r.Register(&MintParser{}) })
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestScanFindsOnlyCSVs(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "UPPER.CSV"), []byte("x"), 0o644))

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "transactions.csv")
	assert.Contains(t, names, "UPPER.CSV")
}

func TestNewest(t *testing.T) {
	now := time.Now()
	files := []FileInfo{
		{Name: "old.csv", ModTime: now.Add(-time.Hour)},
		{Name: "new.csv", ModTime: now},
		{Name: "mid.csv", ModTime: now.Add(-time.Minute)},
	}
	newest := Newest(files)
	require.NotNil(t, newest)
	assert.Equal(t, "new.csv", newest.Name)

	assert.Nil(t, Newest(nil))
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "done.csv"), []byte("x"), 0o644))

	require.NoError(t, MarkProcessed(root, "done.csv"))

	_, err := os.Stat(filepath.Join(dir, "done.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "processed", "done.csv"))
	assert.NoError(t, err)
}
