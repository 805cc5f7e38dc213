// Package fs provides file-based manifest and artifact storage for one
// category cache directory. Both stores use write-to-temp-then-rename so
// that readers, including readers in other processes, never observe a
// partially written file.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fwojciec/docstash"
	"github.com/google/uuid"
)

// ManifestVersion is the current on-disk manifest format version.
const ManifestVersion = 1

// manifestFile is the on-disk manifest shape.
type manifestFile struct {
	Version  int                        `json:"version"`
	Category string                     `json:"category"`
	Entries  map[string]*docstash.Entry `json:"entries"`
}

// Ensure ManifestStore implements docstash.ManifestStore at compile time.
var _ docstash.ManifestStore = (*ManifestStore)(nil)

// ManifestStore persists the category manifest as a single JSON file.
// Put serializes in-process writers through a mutex and replaces the file
// with an atomic rename, so concurrent processes sharing the directory see
// either the old or the new manifest, never a torn one. A concurrent write
// for the same key from another process can still be lost; the next soft
// refresh self-heals that.
type ManifestStore struct {
	mu       sync.Mutex
	dir      string
	category string
}

// NewManifestStore creates a store for the manifest in dir.
func NewManifestStore(dir, category string) *ManifestStore {
	return &ManifestStore{dir: dir, category: category}
}

// Path returns the manifest file path.
func (s *ManifestStore) Path() string {
	return filepath.Join(s.dir, "manifest.json")
}

// Get retrieves the entry for a key.
func (s *ManifestStore) Get(ctx context.Context, key string) (*docstash.Entry, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}

	entry, ok := m.Entries[key]
	if !ok {
		return nil, docstash.Errorf(docstash.ENOTFOUND, "no manifest entry for %q", key)
	}

	// Copy out so callers cannot mutate store state.
	dup := *entry
	return &dup, nil
}

// Put adds or overwrites the entry for entry.Key.
func (s *ManifestStore) Put(ctx context.Context, entry *docstash.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}

	dup := *entry
	m.Entries[entry.Key] = &dup

	return s.write(m)
}

// List returns all entries sorted by key.
func (s *ManifestStore) List(ctx context.Context) ([]*docstash.Entry, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}

	entries := make([]*docstash.Entry, 0, len(m.Entries))
	for _, entry := range m.Entries {
		dup := *entry
		entries = append(entries, &dup)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries, nil
}

// Rebuild moves a corrupt manifest aside so the category starts empty.
// This is an explicit recovery action; nothing calls it automatically.
func (s *ManifestStore) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	aside := path + ".corrupt." + uuid.New().String()
	if err := os.Rename(path, aside); err != nil {
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "moving corrupt manifest aside")
	}
	return nil
}

// load reads and validates the manifest. A missing file is an empty
// manifest; an unreadable or structurally invalid one is ECORRUPT, never
// silently empty.
func (s *ManifestStore) load() (*manifestFile, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return &manifestFile{
			Version:  ManifestVersion,
			Category: s.category,
			Entries:  make(map[string]*docstash.Entry),
		}, nil
	}
	if err != nil {
		return nil, docstash.WrapErrorf(err, docstash.ESTORAGE, "reading manifest %s", s.Path())
	}

	var m manifestFile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, docstash.WrapErrorf(err, docstash.ECORRUPT, "manifest %s is not valid JSON", s.Path())
	}
	if err := validate(&m); err != nil {
		return nil, err
	}
	if m.Entries == nil {
		m.Entries = make(map[string]*docstash.Entry)
	}

	return &m, nil
}

// validate performs structural validation of a decoded manifest.
func validate(m *manifestFile) error {
	if m.Version != ManifestVersion {
		return docstash.Errorf(docstash.ECORRUPT, "unsupported manifest version %d", m.Version)
	}
	for key, entry := range m.Entries {
		if entry == nil {
			return docstash.Errorf(docstash.ECORRUPT, "manifest entry %q is null", key)
		}
		if entry.Key != key {
			return docstash.Errorf(docstash.ECORRUPT, "manifest entry %q recorded under key %q", entry.Key, key)
		}
		if err := entry.Validate(); err != nil {
			return docstash.WrapErrorf(err, docstash.ECORRUPT, "manifest entry %q is invalid", key)
		}
	}
	return nil
}

// write marshals the manifest to a uniquely named temp file in the same
// directory and renames it over the durable file. Rename is atomic on the
// same filesystem, so a crash mid-write leaves the previous manifest intact.
func (s *ManifestStore) write(m *manifestFile) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "creating cache directory %s", s.dir)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return docstash.WrapErrorf(err, docstash.EINTERNAL, "encoding manifest")
	}

	tmp := s.Path() + "." + uuid.New().String() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "creating temp manifest %s", tmp)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "writing temp manifest %s", tmp)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "syncing temp manifest %s", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "closing temp manifest %s", tmp)
	}

	if err := os.Rename(tmp, s.Path()); err != nil {
		os.Remove(tmp)
		return docstash.WrapErrorf(err, docstash.ESTORAGE, "replacing manifest %s", s.Path())
	}

	return nil
}
