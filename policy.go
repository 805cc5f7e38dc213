package docstash

import "time"

// Decision is the outcome of the staleness check for one cache entry.
type Decision int

const (
	// Serve uses the cached artifact verbatim; no network call at all.
	Serve Decision = iota

	// SoftRefresh re-checks the remote fingerprint. An unchanged
	// fingerprint renews the TTL window without transferring content;
	// a changed one escalates to a full refresh.
	SoftRefresh

	// FullRefresh fetches content and fingerprint and rewrites the entry.
	FullRefresh
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case Serve:
		return "serve"
	case SoftRefresh:
		return "soft-refresh"
	case FullRefresh:
		return "full-refresh"
	default:
		return "unknown"
	}
}

// Decide determines how to satisfy a fetch given the current manifest entry,
// or nil when the document has never been cached. The two-tier check (time
// first, fingerprint second) bounds network traffic in the common unchanged
// case and staleness in the worst case: at most one fingerprint probe per
// TTL period.
func Decide(entry *Entry, now time.Time, ttl time.Duration, force bool) Decision {
	if force {
		return FullRefresh
	}
	if entry == nil {
		return FullRefresh
	}
	if now.Sub(entry.FetchedAt) < ttl {
		return Serve
	}
	return SoftRefresh
}
