package docstash

import (
	"context"
	"time"
)

// Entry records the cache state of one document within a category manifest.
// An entry exists if and only if an artifact exists at ArtifactPath whose
// bytes match the remote state as of Fingerprint.
type Entry struct {
	Key          string    `json:"key"`
	RemotePath   string    `json:"remotePath"`
	Fingerprint  string    `json:"fingerprint"`
	ContentHash  string    `json:"contentHash"`
	FetchedAt    time.Time `json:"fetchedAt"`
	ArtifactPath string    `json:"artifactPath"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Key == "" {
		return Errorf(EINVALID, "entry key required")
	}
	if e.Fingerprint == "" {
		return Errorf(EINVALID, "entry fingerprint required")
	}
	if e.FetchedAt.IsZero() {
		return Errorf(EINVALID, "entry fetch time required")
	}
	if e.ArtifactPath == "" {
		return Errorf(EINVALID, "entry artifact path required")
	}
	return nil
}

// Artifact is a locally cached document returned to callers. Content is a
// copy; callers must not assume it stays valid across the next fetch.
type Artifact struct {
	Key     string
	Path    string
	Content []byte
}

// ManifestStore is the durable mapping from cache key to entry for one
// category. Put must be atomic with respect to concurrent readers and
// writers sharing the cache directory, including other processes: a reader
// never observes a partially written manifest.
type ManifestStore interface {
	// Get retrieves the entry for a key.
	// Returns ENOTFOUND if no entry exists, ECORRUPT if the manifest
	// cannot be read or fails structural validation.
	Get(ctx context.Context, key string) (*Entry, error)

	// Put adds or overwrites the entry for entry.Key.
	Put(ctx context.Context, entry *Entry) error

	// List returns all entries. Order is unspecified.
	// Returns ECORRUPT if the manifest fails structural validation.
	List(ctx context.Context) ([]*Entry, error)
}

// ArtifactStore persists document bodies for one category. Writes must be
// durable before they return so the coordinator can update the manifest
// afterwards without breaking the entry/artifact invariant.
type ArtifactStore interface {
	// Write stores content for a key and returns the artifact path.
	Write(ctx context.Context, key string, content []byte) (string, error)

	// Read returns the stored content for a key.
	// Returns ENOTFOUND if no artifact exists.
	Read(ctx context.Context, key string) ([]byte, error)
}
