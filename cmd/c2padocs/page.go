package main

import (
	"fmt"

	"github.com/akowalczyk/c2padocs"
)

// Run executes the page command: fetch, extract the main content, convert
// to Markdown.
func (c *PageCmd) Run(deps *Dependencies) error {
	body, err := deps.Fetcher.Fetch(deps.Ctx, c.URL, map[string]string{"Accept": "text/html"})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(string(body))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}
	if extracted.ContentHTML == "" {
		return c2padocs.Errorf(c2padocs.ENOTFOUND, "no readable content at %s", c.URL)
	}

	md, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	if extracted.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", extracted.Title)
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
