package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/docstash"
	"github.com/fwojciec/docstash/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Remote Classification
//
// The source performs single round-trips and classifies every outcome into
// an application error code. Retry policy lives with the caller, so these
// tests only care that each HTTP outcome maps to the right code.

var buttonLocator = docstash.Locator{
	Category: "ui",
	Repo:     "nuxt/ui",
	Ref:      "v4",
	Path:     "docs/content/docs/2.components/button.md",
}

// newTestSource starts a server playing both the API and raw hosts and
// returns a source pointed at it.
func newTestSource(t *testing.T, handler http.Handler) *github.Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return github.NewSource(github.WithBaseURLs(srv.URL, srv.URL))
}

func TestSource_FingerprintReturnsLatestCommitSHA(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[{"sha":"abc123def456"}]`)
	}))

	fingerprint, err := src.Fingerprint(context.Background(), buttonLocator)

	require.NoError(t, err)
	assert.Equal(t, "abc123def456", fingerprint)
	assert.Equal(t, "/repos/nuxt/ui/commits", gotPath)
	assert.Contains(t, gotQuery, "per_page=1")
	assert.Contains(t, gotQuery, "sha=v4")
}

func TestSource_FingerprintEmptyHistoryMeansMissing(t *testing.T) {
	t.Parallel()

	// GitHub returns an empty commit list for paths that never existed
	// on the ref.
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EREMOTEMISSING, docstash.ErrorCode(err))
}

func TestSource_ContentReturnsBodyAndFingerprint(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/nuxt/ui/commits" {
			fmt.Fprint(w, `[{"sha":"abc123"}]`)
			return
		}
		// Raw host: /{repo}/{ref}/{path}
		assert.Equal(t, "/nuxt/ui/v4/docs/content/docs/2.components/button.md", r.URL.Path)
		fmt.Fprint(w, "# Button\n")
	}))

	fingerprint, content, err := src.Content(context.Background(), buttonLocator)

	require.NoError(t, err)
	assert.Equal(t, "abc123", fingerprint)
	assert.Equal(t, []byte("# Button\n"), content)
}

func TestSource_NotFoundIsRemoteMissing(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EREMOTEMISSING, docstash.ErrorCode(err))
}

func TestSource_TooManyRequestsIsThrottled(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.ETHROTTLED, docstash.ErrorCode(err))
}

func TestSource_ForbiddenWithExhaustedQuotaIsThrottled(t *testing.T) {
	t.Parallel()

	// GitHub reports API quota exhaustion as 403 with a rate-limit header.
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.ETHROTTLED, docstash.ErrorCode(err))
}

func TestSource_PlainForbiddenIsRemoteMissing(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EREMOTEMISSING, docstash.ErrorCode(err))
}

func TestSource_ServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EUNAVAILABLE, docstash.ErrorCode(err))
}

func TestSource_TimeoutIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	src := github.NewSource(
		github.WithBaseURLs(srv.URL, srv.URL),
		github.WithTimeout(20*time.Millisecond),
	)

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EUNAVAILABLE, docstash.ErrorCode(err))
}

func TestSource_ConnectionFailureIsTransient(t *testing.T) {
	t.Parallel()

	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	src := github.NewSource(github.WithBaseURLs(srv.URL, srv.URL))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EUNAVAILABLE, docstash.ErrorCode(err))
}

func TestSource_SendsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `[{"sha":"abc"}]`)
	}))

	_, err := src.Fingerprint(context.Background(), buttonLocator)

	require.NoError(t, err)
	assert.Equal(t, github.DefaultUserAgent, gotUA)
}

func TestSource_ContentFingerprintFailureShortCircuits(t *testing.T) {
	t.Parallel()

	var rawRequests int
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/nuxt/ui/commits" {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		rawRequests++
	}))

	_, _, err := src.Content(context.Background(), buttonLocator)

	assert.Equal(t, docstash.EREMOTEMISSING, docstash.ErrorCode(err))
	assert.Zero(t, rawRequests, "body must not be transferred when the fingerprint probe fails")
}
