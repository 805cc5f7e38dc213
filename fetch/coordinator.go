// Package fetch orchestrates identifier resolution, the staleness policy,
// remote retrieval, and manifest updates for one category.
package fetch

import (
	"context"
	"time"

	"github.com/fwojciec/docstash"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when the corresponding Coordinator field is zero.
const (
	DefaultTTL         = 24 * time.Hour
	DefaultConcurrency = 3
)

// Options modify a single fetch.
type Options struct {
	// Force skips the staleness check and always performs a full refresh.
	Force bool
}

// Result is the outcome for one identifier in a bulk update.
type Result struct {
	Identifier string
	Artifact   *docstash.Artifact
	Err        error
}

// Coordinator executes fetches against one category. All fields except TTL,
// Concurrency, Limiter, RetryDelays and Now are required.
type Coordinator struct {
	Category  *docstash.Category
	Source    docstash.RemoteSource
	Manifest  docstash.ManifestStore
	Artifacts docstash.ArtifactStore

	TTL         time.Duration    // staleness window, DefaultTTL if zero
	Concurrency int              // bulk fan-out bound, DefaultConcurrency if zero
	Limiter     *Limiter         // optional remote call rate limit
	RetryDelays []time.Duration  // DefaultRetryDelays() if nil
	Now         func() time.Time // time.Now if nil, injectable for tests
}

// FetchOne resolves an identifier and returns its artifact, fetching from
// the remote only when the staleness policy requires it. The artifact write
// always completes before the manifest update, so an interrupted fetch
// leaves the manifest in its pre-fetch state.
func (c *Coordinator) FetchOne(ctx context.Context, identifier string, opts Options) (*docstash.Artifact, error) {
	loc, err := c.Category.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	key := docstash.Normalize(identifier)

	entry, err := c.Manifest.Get(ctx, key)
	if err != nil && docstash.ErrorCode(err) != docstash.ENOTFOUND {
		return nil, err
	}

	now := c.now()
	switch docstash.Decide(entry, now, c.ttl(), opts.Force) {
	case docstash.Serve:
		artifact, err := c.serve(ctx, entry)
		if err == nil {
			return artifact, nil
		}
		if docstash.ErrorCode(err) != docstash.ENOTFOUND {
			return nil, err
		}
		// Manifest entry without a matching artifact: self-heal.
		return c.fullRefresh(ctx, key, loc, now)

	case docstash.SoftRefresh:
		return c.softRefresh(ctx, key, loc, entry, now)

	default:
		return c.fullRefresh(ctx, key, loc, now)
	}
}

// FetchAll applies FetchOne to every identifier in the category table.
// Fetches fan out concurrently up to the concurrency bound; each outcome is
// collected independently, so one failing identifier never aborts its
// siblings. Results come back in table order.
func (c *Coordinator) FetchAll(ctx context.Context, opts Options) []Result {
	ids := c.Category.Identifiers()
	results := make([]Result, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			artifact, err := c.FetchOne(gctx, id, opts)
			results[i] = Result{Identifier: id, Artifact: artifact, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Status lists the current manifest state. Pure read: no network access,
// no mutation.
func (c *Coordinator) Status(ctx context.Context) ([]*docstash.Entry, error) {
	return c.Manifest.List(ctx)
}

// serve reads the cached artifact for an entry and verifies it still
// matches the manifest. A missing or drifted artifact reports ENOTFOUND so
// the caller can escalate to a full refresh.
func (c *Coordinator) serve(ctx context.Context, entry *docstash.Entry) (*docstash.Artifact, error) {
	content, err := c.Artifacts.Read(ctx, entry.Key)
	if err != nil {
		return nil, err
	}

	if entry.ContentHash != "" && docstash.HashContent(content) != entry.ContentHash {
		return nil, docstash.Errorf(docstash.ENOTFOUND, "artifact for %q does not match manifest", entry.Key)
	}

	return &docstash.Artifact{
		Key:     entry.Key,
		Path:    entry.ArtifactPath,
		Content: content,
	}, nil
}

// softRefresh probes the remote fingerprint. Unchanged content renews the
// TTL window with a timestamp-only manifest update; changed content
// escalates to a full refresh.
func (c *Coordinator) softRefresh(ctx context.Context, key string, loc docstash.Locator, entry *docstash.Entry, now time.Time) (*docstash.Artifact, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var fingerprint string
	err := Do(ctx, c.delays(), func(ctx context.Context) error {
		var err error
		fingerprint, err = c.Source.Fingerprint(ctx, loc)
		return err
	})
	if err != nil {
		return nil, err
	}

	if fingerprint != entry.Fingerprint {
		return c.fullRefresh(ctx, key, loc, now)
	}

	refreshed := *entry
	refreshed.FetchedAt = now
	if err := c.Manifest.Put(ctx, &refreshed); err != nil {
		return nil, err
	}

	artifact, err := c.serve(ctx, &refreshed)
	if err == nil {
		return artifact, nil
	}
	if docstash.ErrorCode(err) != docstash.ENOTFOUND {
		return nil, err
	}
	return c.fullRefresh(ctx, key, loc, now)
}

// fullRefresh fetches content, writes the artifact durably, and only then
// overwrites the manifest entry.
func (c *Coordinator) fullRefresh(ctx context.Context, key string, loc docstash.Locator, now time.Time) (*docstash.Artifact, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var (
		fingerprint string
		content     []byte
	)
	err := Do(ctx, c.delays(), func(ctx context.Context) error {
		var err error
		fingerprint, content, err = c.Source.Content(ctx, loc)
		return err
	})
	if err != nil {
		return nil, err
	}

	path, err := c.Artifacts.Write(ctx, key, content)
	if err != nil {
		return nil, err
	}

	entry := &docstash.Entry{
		Key:          key,
		RemotePath:   loc.Path,
		Fingerprint:  fingerprint,
		ContentHash:  docstash.HashContent(content),
		FetchedAt:    now,
		ArtifactPath: path,
	}
	if err := c.Manifest.Put(ctx, entry); err != nil {
		return nil, err
	}

	return &docstash.Artifact{
		Key:     key,
		Path:    path,
		Content: content,
	}, nil
}

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now().UTC()
}

func (c *Coordinator) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultTTL
}

func (c *Coordinator) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func (c *Coordinator) delays() []time.Duration {
	if c.RetryDelays != nil {
		return c.RetryDelays
	}
	return DefaultRetryDelays()
}
