package docstash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashContent computes the content hash recorded in manifest entries.
// The hash detects local artifact drift; it is unrelated to the remote
// fingerprint, which tracks upstream revisions.
func HashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
