// Package slog provides logging decorators for docstash interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docstash"
)

// Ensure LoggingSource implements docstash.RemoteSource.
var _ docstash.RemoteSource = (*LoggingSource)(nil)

// LoggingSource wraps a RemoteSource with debug logging of every remote
// round-trip. Useful for seeing exactly how many network calls a fetch
// actually made.
type LoggingSource struct {
	next   docstash.RemoteSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docstash.RemoteSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Fingerprint delegates to the wrapped source and logs the probe.
func (s *LoggingSource) Fingerprint(ctx context.Context, loc docstash.Locator) (string, error) {
	begin := time.Now()
	fingerprint, err := s.next.Fingerprint(ctx, loc)
	s.logger.Debug("fingerprint probe",
		"category", loc.Category,
		"repo", loc.Repo,
		"path", loc.Path,
		"fingerprint", fingerprint,
		"error", errString(err),
		"duration", time.Since(begin),
	)
	return fingerprint, err
}

// Content delegates to the wrapped source and logs the transfer.
func (s *LoggingSource) Content(ctx context.Context, loc docstash.Locator) (string, []byte, error) {
	begin := time.Now()
	fingerprint, content, err := s.next.Content(ctx, loc)
	s.logger.Debug("content fetch",
		"category", loc.Category,
		"repo", loc.Repo,
		"path", loc.Path,
		"fingerprint", fingerprint,
		"bytes", len(content),
		"error", errString(err),
		"duration", time.Since(begin),
	)
	return fingerprint, content, err
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
