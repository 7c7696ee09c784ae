package main

import (
	"fmt"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	var headers map[string]string
	if c.Accept != "" {
		headers = map[string]string{"Accept": c.Accept}
	}

	body, err := deps.Fetcher.Fetch(deps.Ctx, c.URL, headers)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	_, err = deps.Stdout.Write(body)
	return err
}
