package docstash

import (
	"sort"
	"strings"
)

// Locator is a fully resolved remote location for one document.
// It is immutable once produced by Category.Resolve.
type Locator struct {
	Category string // category name, e.g. "ui"
	Repo     string // owner/name, e.g. "nuxt/ui"
	Ref      string // branch or tag the category tracks
	Path     string // repo-relative file path
}

// Category is a static table mapping short identifiers to files in one
// upstream source. Tables are enumerated at compile time and never mutated;
// each category owns an isolated cache directory and manifest.
//
// A category either tracks a single repository (Repo set) or a GitHub
// organization (Org set), in which case the first segment of each entry path
// names the repository within the organization. The latter form serves
// template categories whose identifiers look like
// "dashboard/app/layouts/default.vue".
type Category struct {
	Name     string
	Repo     string // owner/name of the single tracked repository
	Org      string // organization; mutually exclusive with Repo
	Ref      string // branch or tag
	BasePath string // prefix joined onto every entry path, may be empty

	// Entries maps normalized identifier to repo-relative path (below
	// BasePath). Aliases are separate keys pointing at the same path.
	Entries map[string]string
}

// Normalize canonicalizes a raw identifier: whitespace trimmed, case folded.
// The result is the cache key for the identifier within its category.
func Normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Resolve maps a raw identifier to its remote location. It fails with
// ENOTFOUND when the normalized identifier has no table entry; resolution
// never touches the cache or the network.
func (c *Category) Resolve(identifier string) (Locator, error) {
	key := Normalize(identifier)
	if key == "" {
		return Locator{}, Errorf(EINVALID, "identifier required")
	}

	rel, ok := c.Entries[key]
	if !ok {
		return Locator{}, Errorf(ENOTFOUND, "unknown identifier %q in category %q", identifier, c.Name)
	}

	repo := c.Repo
	if c.Org != "" {
		name, rest, found := strings.Cut(rel, "/")
		if !found {
			return Locator{}, Errorf(EINTERNAL, "malformed table entry %q in category %q", rel, c.Name)
		}
		repo = c.Org + "/" + name
		rel = rest
	}

	path := rel
	if c.BasePath != "" {
		path = c.BasePath + "/" + rel
	}

	return Locator{
		Category: c.Name,
		Repo:     repo,
		Ref:      c.Ref,
		Path:     path,
	}, nil
}

// Identifiers returns every identifier known to the table, sorted.
// Aliases are included; each is a distinct cache key.
func (c *Category) Identifiers() []string {
	ids := make([]string, 0, len(c.Entries))
	for id := range c.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithRef returns a copy of the category tracking a different branch or tag.
// Used for the ref override; the receiver is not modified.
func (c *Category) WithRef(ref string) *Category {
	if ref == "" || ref == c.Ref {
		return c
	}
	dup := *c
	dup.Ref = ref
	return &dup
}
