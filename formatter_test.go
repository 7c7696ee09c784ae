package c2padocs_test

import (
	"testing"

	"github.com/akowalczyk/c2padocs"
	"github.com/stretchr/testify/assert"
)

func TestFormatResults(t *testing.T) {
	t.Parallel()

	t.Run("no results", func(t *testing.T) {
		t.Parallel()

		out := c2padocs.FormatResults("manifest", nil)
		assert.Equal(t, `No matches found for "manifest".`, out)
	})

	t.Run("renders number, title, permalink and snippet", func(t *testing.T) {
		t.Parallel()

		results := []c2padocs.SearchResult{
			{
				Section: c2padocs.Section{
					Number:    "3.4",
					Title:     "3.4 Manifests",
					Permalink: "https://example.org/spec.html#manifests",
				},
				Score:   2.5,
				Snippet: "A manifest binds assertions to an asset.",
			},
		}

		out := c2padocs.FormatResults("manifest", results)
		assert.Contains(t, out, "### Spec matches")
		assert.Contains(t, out, "**3.4** 3.4 Manifests — https://example.org/spec.html#manifests")
		assert.Contains(t, out, "A manifest binds assertions to an asset.")
	})

	t.Run("falls back to anchor when number missing", func(t *testing.T) {
		t.Parallel()

		results := []c2padocs.SearchResult{
			{Section: c2padocs.Section{Anchor: "introduction", Title: "Introduction", Permalink: "https://example.org/spec.html#introduction"}},
		}

		out := c2padocs.FormatResults("intro", results)
		assert.Contains(t, out, "**introduction** Introduction")
	})
}

func TestFormatSections(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, c2padocs.FormatSections(nil))
	})

	t.Run("one line per section", func(t *testing.T) {
		t.Parallel()

		sections := []c2padocs.Section{
			{Number: "1", Title: "1 Scope", Permalink: "https://example.org/spec.html#scope"},
			{Anchor: "annex-a", Title: "Annex A", Permalink: "https://example.org/spec.html#annex-a"},
		}

		out := c2padocs.FormatSections(sections)
		assert.Equal(t, "- 1 1 Scope - https://example.org/spec.html#scope\n- annex-a Annex A - https://example.org/spec.html#annex-a", out)
	})
}
