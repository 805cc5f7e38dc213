// Package github implements docstash.RemoteSource against the GitHub
// commits API (revision fingerprints) and the raw content host (document
// bodies). Only anonymous read access is used.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/docstash"
)

// Default endpoints and limits.
const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultRawBaseURL = "https://raw.githubusercontent.com"
	DefaultTimeout    = 15 * time.Second
	DefaultUserAgent  = "docstash"
)

// Ensure Source implements docstash.RemoteSource at compile time.
var _ docstash.RemoteSource = (*Source)(nil)

// Source retrieves fingerprints and content over plain HTTP.
// It performs no retries; retry policy belongs to the caller.
type Source struct {
	client    *http.Client
	apiBase   string
	rawBase   string
	timeout   time.Duration
	userAgent string
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithBaseURLs overrides the API and raw content endpoints.
// Used by tests to point the source at a local server.
func WithBaseURLs(api, raw string) Option {
	return func(s *Source) {
		s.apiBase = api
		s.rawBase = raw
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(s *Source) {
		s.userAgent = ua
	}
}

// NewSource creates a new GitHub-backed Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		apiBase:   DefaultAPIBaseURL,
		rawBase:   DefaultRawBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Fingerprint returns the SHA of the latest commit touching the locator's
// path on its ref. This is a metadata-only request; the document body is
// not transferred.
func (s *Source) Fingerprint(ctx context.Context, loc docstash.Locator) (string, error) {
	u := fmt.Sprintf("%s/repos/%s/commits?sha=%s&path=%s&per_page=1",
		s.apiBase, loc.Repo, url.QueryEscape(loc.Ref), url.QueryEscape(loc.Path))

	body, err := s.get(ctx, u, "application/vnd.github+json")
	if err != nil {
		return "", err
	}

	var commits []struct {
		SHA string `json:"sha"`
	}
	if err := json.Unmarshal(body, &commits); err != nil {
		return "", docstash.WrapErrorf(err, docstash.EUNAVAILABLE, "malformed commit listing for %s@%s", loc.Repo, loc.Ref)
	}
	if len(commits) == 0 {
		return "", docstash.Errorf(docstash.EREMOTEMISSING, "no commits for %s in %s@%s", loc.Path, loc.Repo, loc.Ref)
	}

	return commits[0].SHA, nil
}

// Content returns the document body for the locator along with the
// fingerprint it was retrieved at. The fingerprint is taken first so that
// a commit landing mid-fetch makes the entry look older, not newer; the
// next soft refresh heals the difference.
func (s *Source) Content(ctx context.Context, loc docstash.Locator) (string, []byte, error) {
	fingerprint, err := s.Fingerprint(ctx, loc)
	if err != nil {
		return "", nil, err
	}

	u := fmt.Sprintf("%s/%s/%s/%s", s.rawBase, loc.Repo, loc.Ref, loc.Path)
	body, err := s.get(ctx, u, "")
	if err != nil {
		return "", nil, err
	}

	return fingerprint, body, nil
}

// get performs a single GET and classifies the outcome into application
// error codes.
func (s *Source) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, docstash.WrapErrorf(err, docstash.EINTERNAL, "building request for %s", rawURL)
	}
	req.Header.Set("User-Agent", s.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		// Timeouts, connection resets, DNS failures: all transient.
		return nil, docstash.WrapErrorf(err, docstash.EUNAVAILABLE, "request to %s failed", rawURL)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, docstash.WrapErrorf(err, docstash.EUNAVAILABLE, "reading response from %s", rawURL)
		}
		return body, nil

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return nil, docstash.Errorf(docstash.ETHROTTLED, "rate limited by %s (HTTP %d)", req.URL.Host, resp.StatusCode)

	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, docstash.Errorf(docstash.EUNAVAILABLE, "HTTP %d from %s", resp.StatusCode, rawURL)

	default:
		// 404 and the remaining 4xx family: the resolved path does not
		// exist upstream. Never retried.
		return nil, docstash.Errorf(docstash.EREMOTEMISSING, "HTTP %d from %s", resp.StatusCode, rawURL)
	}
}
