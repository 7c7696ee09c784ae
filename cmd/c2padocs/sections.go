package main

import (
	"fmt"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	sourceID := c.Source
	if sourceID == "" {
		sourceID = "spec-" + c2padocs.DefaultSpecVersion
	}

	sections, err := deps.Spec.Sections(deps.Ctx, sourceID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stdout, "No sections indexed for %q.\n", sourceID)
		return nil
	}

	fmt.Fprintln(deps.Stdout, c2padocs.FormatSections(sections))
	return nil
}
