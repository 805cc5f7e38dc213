package mock

import (
	"context"

	"github.com/fwojciec/docstash"
)

var _ docstash.RemoteSource = (*RemoteSource)(nil)

// RemoteSource is a mock implementation of docstash.RemoteSource.
type RemoteSource struct {
	FingerprintFn func(ctx context.Context, loc docstash.Locator) (string, error)
	ContentFn     func(ctx context.Context, loc docstash.Locator) (string, []byte, error)
}

func (s *RemoteSource) Fingerprint(ctx context.Context, loc docstash.Locator) (string, error) {
	return s.FingerprintFn(ctx, loc)
}

func (s *RemoteSource) Content(ctx context.Context, loc docstash.Locator) (string, []byte, error) {
	return s.ContentFn(ctx, loc)
}
