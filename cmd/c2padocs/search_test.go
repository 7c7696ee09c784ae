package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/akowalczyk/c2padocs"
	main "github.com/akowalczyk/c2padocs/cmd/c2padocs"
	"github.com/akowalczyk/c2padocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked matches with permalinks", func(t *testing.T) {
		t.Parallel()

		var gotQuery c2padocs.SearchQuery
		specSvc := &mock.SpecService{
			SearchFn: func(_ context.Context, q c2padocs.SearchQuery) ([]c2padocs.SearchResult, error) {
				gotQuery = q
				return []c2padocs.SearchResult{
					{
						Section: c2padocs.Section{
							Number:    "7.1",
							Title:     "Manifests",
							Permalink: "https://example.org/spec.html#_manifests",
						},
						Score:   3.5,
						Snippet: "a manifest binds assertions to an asset",
					},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Spec = specSvc

		cmd := &main.SearchCmd{Query: "manifest", Section: "7", Limit: 3}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "manifest", gotQuery.Query)
		assert.Equal(t, "7", gotQuery.Section)
		assert.Equal(t, 3, gotQuery.Limit)
		out := stdout.String()
		assert.Contains(t, out, "7.1")
		assert.Contains(t, out, "Manifests")
		assert.Contains(t, out, "#_manifests")
		assert.Contains(t, out, "binds assertions")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		specSvc := &mock.SpecService{
			SearchFn: func(_ context.Context, q c2padocs.SearchQuery) ([]c2padocs.SearchResult, error) {
				return []c2padocs.SearchResult{}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Spec = specSvc

		cmd := &main.SearchCmd{Query: "watermark"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No matches found")
	})

	t.Run("surfaces service errors on stderr", func(t *testing.T) {
		t.Parallel()

		specSvc := &mock.SpecService{
			SearchFn: func(_ context.Context, q c2padocs.SearchQuery) ([]c2padocs.SearchResult, error) {
				return nil, c2padocs.Errorf(c2padocs.EUNAVAILABLE, "spec host unreachable")
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Spec = specSvc

		cmd := &main.SearchCmd{Query: "manifest"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "spec host unreachable")
	})
}

func TestSectionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the current specification version", func(t *testing.T) {
		t.Parallel()

		var gotSource string
		specSvc := &mock.SpecService{
			SectionsFn: func(_ context.Context, sourceID string) ([]c2padocs.Section, error) {
				gotSource = sourceID
				return []c2padocs.Section{
					{Number: "1", Title: "Scope", Permalink: "https://example.org/spec.html#_scope"},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Spec = specSvc

		cmd := &main.SectionsCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "spec-"+c2padocs.DefaultSpecVersion, gotSource)
		assert.Contains(t, stdout.String(), "Scope")
	})

	t.Run("reports an empty index", func(t *testing.T) {
		t.Parallel()

		specSvc := &mock.SpecService{
			SectionsFn: func(_ context.Context, sourceID string) ([]c2padocs.Section, error) {
				return nil, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Spec = specSvc

		cmd := &main.SectionsCmd{Source: "spec-2.1"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No sections indexed")
		assert.Contains(t, stdout.String(), "spec-2.1")
	})
}
