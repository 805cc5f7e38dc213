package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docstash"
)

// Ensure ArtifactStore implements docstash.ArtifactStore at compile time.
var _ docstash.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore persists document bodies as flat files in one directory.
// Writes go through a temp file and an atomic rename so a crash never
// leaves a truncated artifact behind.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates a store writing into dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// KeyFilename converts a cache key to its artifact filename. Path
// separators flatten to underscores so template keys like
// "dashboard/app/app.vue" stay single files; keys without a source file
// extension get ".md" appended.
func KeyFilename(key string) string {
	name := strings.ReplaceAll(key, "/", "_")
	switch filepath.Ext(name) {
	case ".md", ".vue", ".ts", ".js", ".mjs", ".json", ".yml", ".yaml":
		return name
	default:
		return name + ".md"
	}
}

// Path returns the artifact path for a key.
func (s *ArtifactStore) Path(key string) string {
	return filepath.Join(s.dir, KeyFilename(key))
}

// Write stores content for a key durably and returns the artifact path.
func (s *ArtifactStore) Write(ctx context.Context, key string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "creating artifact directory %s", s.dir)
	}

	final := s.Path(key)

	f, err := os.CreateTemp(s.dir, KeyFilename(key)+".tmp-*")
	if err != nil {
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "creating temp artifact for %q", key)
	}
	tmp := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "writing artifact for %q", key)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "syncing artifact for %q", key)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "closing artifact for %q", key)
	}

	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "setting artifact permissions for %q", key)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", docstash.WrapErrorf(err, docstash.ESTORAGE, "replacing artifact %s", final)
	}

	return final, nil
}

// Read returns the stored content for a key.
func (s *ArtifactStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return nil, docstash.Errorf(docstash.ENOTFOUND, "no artifact for %q", key)
	}
	if err != nil {
		return nil, docstash.WrapErrorf(err, docstash.ESTORAGE, "reading artifact for %q", key)
	}
	return data, nil
}
