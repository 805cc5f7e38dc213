package main

import (
	"fmt"

	"github.com/fwojciec/docstash"
	"github.com/fwojciec/docstash/fetch"
)

// Run executes the update command: a bulk refresh of every identifier the
// category knows. Partial success exits zero with a warning summary; the
// exit code is non-zero only when every identifier failed.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	if c.Rebuild {
		if err := deps.Rebuild(c.Category); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
			return err
		}
	}

	coordinator, err := deps.Coordinator(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
		return err
	}

	results := coordinator.FetchAll(deps.Ctx, fetch.Options{Force: c.Force})

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  failed:  %s: %s\n", result.Identifier, docstash.ErrorMessage(result.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "  updated: %s\n", result.Identifier)
	}

	updated := len(results) - failed
	fmt.Fprintf(deps.Stdout, "Updated %d of %d identifiers\n", updated, len(results))

	if len(results) > 0 && failed == len(results) {
		return fmt.Errorf("all %d identifiers failed", failed)
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d identifiers failed; retry with --force or see errors above\n", failed)
	}

	return nil
}
