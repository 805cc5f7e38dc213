package main

import (
	"fmt"

	"github.com/fwojciec/docstash"
)

// Run executes the list command. It reads only the static category table:
// no cache access, no network.
func (c *ListCmd) Run(deps *Dependencies) error {
	category, err := docstash.CategoryByName(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docstash.ErrorMessage(err))
		return err
	}

	for _, id := range category.Identifiers() {
		fmt.Fprintln(deps.Stdout, id)
	}

	return nil
}
