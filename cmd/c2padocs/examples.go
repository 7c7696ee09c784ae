package main

import (
	"fmt"
	"strings"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	sets, err := deps.Repos.ListExamples(deps.Ctx, c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	if len(sets) == 0 {
		fmt.Fprintln(deps.Stdout, "No examples found.")
		return nil
	}

	for i, set := range sets {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "**%s %s**\n", strings.ToUpper(set.Repo), set.Dir)
		for _, f := range set.Files {
			fmt.Fprintf(deps.Stdout, "- %s (%d bytes)\n", f.Name, f.Size)
		}
	}
	return nil
}
