package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/docstash"
	"github.com/fwojciec/docstash/mock"
	"github.com/fwojciec/docstash/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocator = docstash.Locator{
	Category: "ui",
	Repo:     "nuxt/ui",
	Ref:      "v4",
	Path:     "docs/content/docs/2.components/button.md",
}

func newDebugLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelDebug,
	}))
}

func TestLoggingSource_FingerprintDelegatesAndLogs(t *testing.T) {
	t.Parallel()

	next := &mock.RemoteSource{
		FingerprintFn: func(ctx context.Context, loc docstash.Locator) (string, error) {
			return "abc123", nil
		},
	}
	var buf bytes.Buffer
	src := slog.NewLoggingSource(next, newDebugLogger(&buf))

	fingerprint, err := src.Fingerprint(context.Background(), testLocator)

	require.NoError(t, err)
	assert.Equal(t, "abc123", fingerprint)
	assert.Contains(t, buf.String(), "fingerprint probe")
	assert.Contains(t, buf.String(), "abc123")
	assert.Contains(t, buf.String(), "nuxt/ui")
}

func TestLoggingSource_ContentDelegatesAndLogs(t *testing.T) {
	t.Parallel()

	next := &mock.RemoteSource{
		ContentFn: func(ctx context.Context, loc docstash.Locator) (string, []byte, error) {
			return "abc123", []byte("# Button\n"), nil
		},
	}
	var buf bytes.Buffer
	src := slog.NewLoggingSource(next, newDebugLogger(&buf))

	fingerprint, content, err := src.Content(context.Background(), testLocator)

	require.NoError(t, err)
	assert.Equal(t, "abc123", fingerprint)
	assert.Equal(t, []byte("# Button\n"), content)
	assert.Contains(t, buf.String(), "content fetch")
	assert.Contains(t, buf.String(), "bytes=9")
}

func TestLoggingSource_PassesErrorsThrough(t *testing.T) {
	t.Parallel()

	next := &mock.RemoteSource{
		FingerprintFn: func(ctx context.Context, loc docstash.Locator) (string, error) {
			return "", docstash.Errorf(docstash.EUNAVAILABLE, "HTTP 503")
		},
	}
	var buf bytes.Buffer
	src := slog.NewLoggingSource(next, newDebugLogger(&buf))

	_, err := src.Fingerprint(context.Background(), testLocator)

	assert.Equal(t, docstash.EUNAVAILABLE, docstash.ErrorCode(err))
	assert.Contains(t, buf.String(), "HTTP 503")
}
