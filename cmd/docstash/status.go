package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docstash"
)

// Run executes the status command. It reports manifest state without any
// network access or mutation.
func (c *StatusCmd) Run(deps *Dependencies) error {
	coordinator, err := deps.Coordinator(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
		return err
	}

	entries, err := coordinator.Status(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
		printHint(deps, c.Category, err)
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents cached yet.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Cached documents (%d), TTL %s:\n", len(entries), deps.TTL)
	for _, entry := range entries {
		age := time.Since(entry.FetchedAt)
		state := "fresh"
		if age >= deps.TTL {
			state = "stale"
		}
		fmt.Fprintf(deps.Stdout, "  %-32s %-5s  %5.1fh ago  %s\n",
			entry.Key, state, age.Hours(), shortFingerprint(entry.Fingerprint))
	}

	return nil
}

// shortFingerprint abbreviates a revision token for display.
func shortFingerprint(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
