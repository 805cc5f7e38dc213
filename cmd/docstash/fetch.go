package main

import (
	"fmt"

	"github.com/fwojciec/docstash"
	"github.com/fwojciec/docstash/fetch"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	coordinator, err := deps.Coordinator(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
		return err
	}

	artifact, err := coordinator.FetchOne(deps.Ctx, c.Identifier, fetch.Options{Force: c.Force})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
		printHint(deps, c.Category, err)
		return err
	}

	if c.PathOnly {
		fmt.Fprintln(deps.Stdout, artifact.Path)
		return nil
	}

	if _, err := deps.Stdout.Write(artifact.Content); err != nil {
		return err
	}
	return nil
}

// printHint suggests a recovery action for error kinds that have one.
func printHint(deps *Dependencies, category string, err error) {
	switch docstash.ErrorCode(err) {
	case docstash.ETHROTTLED:
		fmt.Fprintln(deps.Stderr, "Hint: the upstream rate limit was hit; wait a while before retrying")
	case docstash.ECORRUPT:
		fmt.Fprintf(deps.Stderr, "Hint: run 'docstash update %s --rebuild' to reset the manifest\n", category)
	case docstash.ENOTFOUND:
		fmt.Fprintf(deps.Stderr, "Hint: run 'docstash list %s' to see known identifiers\n", category)
	}
}
