package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the api command.
func (c *APICmd) Run(deps *Dependencies) error {
	refs := c2padocs.APIReferences()
	url, ok := refs[strings.ToLower(c.Library)]
	if !ok {
		known := make([]string, 0, len(refs))
		for name := range refs {
			known = append(known, name)
		}
		sort.Strings(known)
		err := c2padocs.Errorf(c2padocs.EINVALID, "unknown library %q (known: %s)", c.Library, strings.Join(known, ", "))
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s API reference: %s\n", c.Library, url)
	return nil
}
