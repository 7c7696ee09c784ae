package main

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/akowalczyk/c2padocs"
)

// specVersionRe matches published specification documents and captures the
// version path segment.
var specVersionRe = regexp.MustCompile(`/specifications/([^/]+)/specs/C2PA_Specification\.html$`)

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, "https://c2pa.org/specifications/")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", c2padocs.ErrorMessage(err))
		return err
	}

	seen := make(map[string]bool)
	var versions []string
	for _, u := range urls {
		m := specVersionRe.FindStringSubmatch(u)
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		versions = append(versions, m[1])
	}

	if len(versions) == 0 {
		fmt.Fprintln(deps.Stdout, "No published specification versions found.")
		return nil
	}

	sort.Strings(versions)
	for _, v := range versions {
		marker := ""
		if v == c2padocs.DefaultSpecVersion {
			marker = "  (default)"
		}
		fmt.Fprintf(deps.Stdout, "%s%s\n", v, marker)
	}
	return nil
}
