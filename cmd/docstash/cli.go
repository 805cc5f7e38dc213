package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docstash/fetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// TTL is the staleness window shared by all categories.
	TTL time.Duration

	// Coordinator returns the fetch coordinator for a category name.
	Coordinator func(name string) (*fetch.Coordinator, error)

	// Rebuild moves a category's corrupt manifest aside so it starts
	// empty. Explicit recovery only; never invoked automatically.
	Rebuild func(name string) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CacheDir    string        `help:"Cache directory." env:"DOCSTASH_CACHE_DIR" default:"~/.docstash" type:"path"`
	Ref         string        `help:"Override the branch or tag every category tracks." env:"DOCSTASH_REF"`
	TTL         time.Duration `help:"Freshness window before a cached document is re-checked." env:"DOCSTASH_TTL" default:"24h"`
	Timeout     time.Duration `short:"t" help:"Remote request timeout." env:"DOCSTASH_TIMEOUT" default:"15s"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit for bulk updates."`
	Verbose     bool          `short:"v" help:"Enable debug logging of remote calls."`

	Fetch  FetchCmd  `cmd:"" help:"Fetch one document, refreshing the cache only if stale"`
	List   ListCmd   `cmd:"" help:"List identifiers known to a category"`
	Status StatusCmd `cmd:"" help:"Show cached documents and their freshness"`
	Update UpdateCmd `cmd:"" help:"Refresh every identifier in a category"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Category   string `arg:"" help:"Category name (nuxt, ui, templates)"`
	Identifier string `arg:"" help:"Document identifier, e.g. button"`
	Force      bool   `short:"f" help:"Refresh even if the cached copy is fresh"`
	PathOnly   bool   `name:"path" help:"Print the artifact path instead of its content"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `arg:"" help:"Category name (nuxt, ui, templates)"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Category string `arg:"" help:"Category name (nuxt, ui, templates)"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	Category string `arg:"" help:"Category name (nuxt, ui, templates)"`
	Force    bool   `short:"f" help:"Refetch content even where fingerprints are unchanged"`
	Rebuild  bool   `help:"Move a corrupt manifest aside and start empty before updating"`
}
