package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/docstash"
	"github.com/fwojciec/docstash/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Durable Manifest
//
// The manifest is a single JSON file replaced atomically on every write.
// Readers never see a torn manifest; a structurally invalid one surfaces
// ECORRUPT instead of being silently treated as empty.

func testEntry(key string) *docstash.Entry {
	return &docstash.Entry{
		Key:          key,
		RemotePath:   key + ".md",
		Fingerprint:  "s1",
		ContentHash:  "abc123",
		FetchedAt:    time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
		ArtifactPath: filepath.Join("cache", key+".md"),
	}
}

func TestManifestStore_GetMissingFileActsAsEmpty(t *testing.T) {
	t.Parallel()

	// Given a category directory that has never been written
	store := fs.NewManifestStore(t.TempDir(), "ui")

	// When getting any key
	_, err := store.Get(context.Background(), "button")

	// Then the entry is simply not found; a missing manifest is not corrupt
	assert.Equal(t, docstash.ENOTFOUND, docstash.ErrorCode(err))
}

func TestManifestStore_PutThenGetRoundTrips(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")
	want := testEntry("button")

	require.NoError(t, store.Put(context.Background(), want))

	got, err := store.Get(context.Background(), "button")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManifestStore_PutOverwritesExistingEntry(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")
	require.NoError(t, store.Put(context.Background(), testEntry("button")))

	updated := testEntry("button")
	updated.Fingerprint = "s2"
	require.NoError(t, store.Put(context.Background(), updated))

	got, err := store.Get(context.Background(), "button")
	require.NoError(t, err)
	assert.Equal(t, "s2", got.Fingerprint)
}

func TestManifestStore_PutLeavesNoTempFilesBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir, "ui")
	require.NoError(t, store.Put(context.Background(), testEntry("button")))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, f := range files {
		assert.False(t, strings.Contains(f.Name(), ".tmp"), "leftover temp file %s", f.Name())
	}
}

func TestManifestStore_PutRejectsInvalidEntry(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")
	entry := testEntry("button")
	entry.Fingerprint = ""

	err := store.Put(context.Background(), entry)

	assert.Equal(t, docstash.EINVALID, docstash.ErrorCode(err))
}

func TestManifestStore_ListSortedByKey(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")
	for _, key := range []string{"tabs", "button", "modal"} {
		require.NoError(t, store.Put(context.Background(), testEntry(key)))
	}

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "button", entries[0].Key)
	assert.Equal(t, "modal", entries[1].Key)
	assert.Equal(t, "tabs", entries[2].Key)
}

func TestManifestStore_GetCopiesOutEntries(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")
	require.NoError(t, store.Put(context.Background(), testEntry("button")))

	got, err := store.Get(context.Background(), "button")
	require.NoError(t, err)
	got.Fingerprint = "mutated"

	again, err := store.Get(context.Background(), "button")
	require.NoError(t, err)
	assert.Equal(t, "s1", again.Fingerprint)
}

// Story: Corruption Surfacing
//
// A manifest that cannot be parsed or fails structural validation must be
// reported, never treated as empty. Recovery is an explicit Rebuild.

func TestManifestStore_InvalidJSONIsCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir, "ui")
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Get(context.Background(), "button")
	assert.Equal(t, docstash.ECORRUPT, docstash.ErrorCode(err))

	_, err = store.List(context.Background())
	assert.Equal(t, docstash.ECORRUPT, docstash.ErrorCode(err))
}

func TestManifestStore_WrongVersionIsCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir, "ui")
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"version":99,"category":"ui","entries":{}}`), 0o644))

	_, err := store.List(context.Background())
	assert.Equal(t, docstash.ECORRUPT, docstash.ErrorCode(err))
}

func TestManifestStore_MismatchedEntryKeyIsCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir, "ui")
	manifest := `{"version":1,"category":"ui","entries":{"button":{"key":"input","remotePath":"p","fingerprint":"s1","contentHash":"h","fetchedAt":"2026-08-26T10:00:00Z","artifactPath":"a"}}}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(manifest), 0o644))

	_, err := store.Get(context.Background(), "button")
	assert.Equal(t, docstash.ECORRUPT, docstash.ErrorCode(err))
}

func TestManifestStore_PutRefusesToClobberCorruptManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir, "ui")
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	err := store.Put(context.Background(), testEntry("button"))

	assert.Equal(t, docstash.ECORRUPT, docstash.ErrorCode(err))
}

func TestManifestStore_RebuildMovesCorruptManifestAside(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewManifestStore(dir, "ui")
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	// When rebuilding
	require.NoError(t, store.Rebuild(context.Background()))

	// Then the store acts as empty again
	_, err := store.Get(context.Background(), "button")
	assert.Equal(t, docstash.ENOTFOUND, docstash.ErrorCode(err))

	// And the corrupt file is preserved for inspection, not deleted
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	var aside int
	for _, f := range files {
		if strings.Contains(f.Name(), ".corrupt.") {
			aside++
		}
	}
	assert.Equal(t, 1, aside)
}

func TestManifestStore_RebuildWithoutManifestIsNoop(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")

	assert.NoError(t, store.Rebuild(context.Background()))
}

func TestManifestStore_ConcurrentPutsToDistinctKeys(t *testing.T) {
	t.Parallel()

	store := fs.NewManifestStore(t.TempDir(), "ui")
	keys := []string{"button", "input", "modal", "table", "tabs"}

	var wg sync.WaitGroup
	for _, key := range keys {
		key := key
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Put(context.Background(), testEntry(key)))
		}()
	}
	wg.Wait()

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, len(keys))
}
