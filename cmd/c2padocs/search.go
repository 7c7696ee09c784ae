package main

import (
	"fmt"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Spec.Search(deps.Ctx, c2padocs.SearchQuery{
		Query:   c.Query,
		Section: c.Section,
		Limit:   c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, c2padocs.FormatResults(c.Query, results))
	return nil
}
