package mock

import (
	"context"

	"github.com/fwojciec/docstash"
)

var _ docstash.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is a mock implementation of docstash.ManifestStore.
type ManifestStore struct {
	GetFn  func(ctx context.Context, key string) (*docstash.Entry, error)
	PutFn  func(ctx context.Context, entry *docstash.Entry) error
	ListFn func(ctx context.Context) ([]*docstash.Entry, error)
}

func (s *ManifestStore) Get(ctx context.Context, key string) (*docstash.Entry, error) {
	return s.GetFn(ctx, key)
}

func (s *ManifestStore) Put(ctx context.Context, entry *docstash.Entry) error {
	return s.PutFn(ctx, entry)
}

func (s *ManifestStore) List(ctx context.Context) ([]*docstash.Entry, error) {
	return s.ListFn(ctx)
}
