package docstash

import "context"

// RemoteSource retrieves document content and revision tokens from the
// upstream host. Both methods perform a network round-trip; Fingerprint is
// the cheap one and exists so the staleness check can avoid a full body
// transfer when content is unchanged.
//
// Implementations classify failures with the application error codes:
// EREMOTEMISSING for paths absent upstream, ETHROTTLED for rate limiting,
// EUNAVAILABLE for transient network failures. Retry policy is the
// caller's concern, not the source's.
type RemoteSource interface {
	// Fingerprint returns the current revision token for the locator's
	// path, without transferring the document body.
	Fingerprint(ctx context.Context, loc Locator) (string, error)

	// Content returns the document body along with the revision token
	// it was retrieved at.
	Content(ctx context.Context, loc Locator) (string, []byte, error)
}
