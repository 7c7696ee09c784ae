package htmltomarkdown_test

import (
	"testing"

	"github.com/akowalczyk/c2padocs"
	"github.com/akowalczyk/c2padocs/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Manifests</h1><h2>Claims</h2><p>A claim gathers assertions.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "# Manifests")
		assert.Contains(t, md, "## Claims")
		assert.Contains(t, md, "A claim gathers assertions.")
	})

	t.Run("converts links with absolute URLs", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://spec.c2pa.org/">specification</a> for details.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "[specification](https://spec.c2pa.org/)")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code>let reader = Reader::from_file("image.jpg")?;</code></pre>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, `Reader::from_file("image.jpg")`)
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><th>Field</th><th>Type</th></tr>
<tr><td>dc:format</td><td>string</td></tr>
<tr><td>instanceID</td><td>URI</td></tr>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "| Field | Type |")
		assert.Contains(t, md, "dc:format")
	})

	t.Run("converts nested lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>assertions<ul><li>c2pa.actions</li><li>c2pa.hash.data</li></ul></li></ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)
		assert.Contains(t, md, "- assertions")
		assert.Contains(t, md, "c2pa.actions")
	})

	t.Run("empty input returns EINVALID", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"", "  \n "} {
			_, err := htmltomarkdown.NewConverter().Convert(in)
			require.Error(t, err)
			assert.Equal(t, c2padocs.EINVALID, c2padocs.ErrorCode(err))
		}
	})
}
