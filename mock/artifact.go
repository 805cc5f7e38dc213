package mock

import (
	"context"

	"github.com/fwojciec/docstash"
)

var _ docstash.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of docstash.ArtifactStore.
type ArtifactStore struct {
	WriteFn func(ctx context.Context, key string, content []byte) (string, error)
	ReadFn  func(ctx context.Context, key string) ([]byte, error)
}

func (s *ArtifactStore) Write(ctx context.Context, key string, content []byte) (string, error) {
	return s.WriteFn(ctx, key, content)
}

func (s *ArtifactStore) Read(ctx context.Context, key string) ([]byte, error) {
	return s.ReadFn(ctx, key)
}
