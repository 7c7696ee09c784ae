// Package github wraps the GitHub repository contents API for the official
// C2PA repositories. All network access goes through the shared fetch
// client, so the allowlist, cache, and retry policy apply unchanged.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/akowalczyk/c2padocs"
	"golang.org/x/sync/errgroup"
)

const acceptContents = "application/vnd.github.v3+json"

// exampleDirs are probed in order; the first directory that exists and
// contains files wins for a repository.
var exampleDirs = []string{"examples", "samples", "demo", "tests"}

// Entry is one item of a directory listing.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"` // "file" or "dir"
}

// File is a decoded repository file.
type File struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`

	// Text is the decoded file body. Empty with Binary set when the API
	// served no inline content.
	Text   string `json:"text"`
	Binary bool   `json:"binary"`
}

// Content is the result of a contents lookup: a file or a directory
// listing, never both.
type Content struct {
	File    *File   `json:"file,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

// ExampleSet is the example listing found for one repository.
type ExampleSet struct {
	Repo  string  `json:"repo"`
	Dir   string  `json:"dir"`
	Files []Entry `json:"files"`
}

// Service reads files and directory listings from the registered C2PA
// repositories.
type Service struct {
	fetcher c2padocs.Fetcher
	repos   map[string]string
}

// NewService creates a Service over the default repository registry.
func NewService(fetcher c2padocs.Fetcher) *Service {
	return &Service{
		fetcher: fetcher,
		repos:   c2padocs.Repos(),
	}
}

// Get fetches a file or directory listing from a registered repository.
// Unknown repository keys return EINVALID.
func (s *Service) Get(ctx context.Context, repoKey, path string) (*Content, error) {
	slug, ok := s.repos[repoKey]
	if !ok {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "unknown repository %q", repoKey)
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/contents/%s", slug, strings.Trim(path, "/"))
	body, err := s.fetcher.Fetch(ctx, url, map[string]string{"Accept": acceptContents})
	if err != nil {
		return nil, err
	}

	return parseContents(body)
}

// ListExamples returns example file listings for the requested language
// ("rust", "python", "javascript", or "all"). Repositories are probed
// concurrently; a repository with no example directory is simply absent
// from the result.
func (s *Service) ListExamples(ctx context.Context, language string) ([]ExampleSet, error) {
	langRepos := map[string][]string{
		"rust":       {"rs"},
		"python":     {"python"},
		"javascript": {"js"},
		"all":        {"rs", "python", "js"},
	}
	repos, ok := langRepos[language]
	if !ok {
		repos = langRepos["all"]
	}

	var mu sync.Mutex
	var sets []ExampleSet

	g, ctx := errgroup.WithContext(ctx)
	for _, repo := range repos {
		g.Go(func() error {
			set, found := s.probeExamples(ctx, repo)
			if found {
				mu.Lock()
				sets = append(sets, set)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Repo < sets[j].Repo })
	return sets, nil
}

// probeExamples tries each candidate directory in order and returns the
// first one that lists files. Fetch errors (typically 404s for absent
// directories) end the candidate, not the probe.
func (s *Service) probeExamples(ctx context.Context, repo string) (ExampleSet, bool) {
	for _, dir := range exampleDirs {
		content, err := s.Get(ctx, repo, dir)
		if err != nil || content.File != nil {
			continue
		}

		var files []Entry
		for _, e := range content.Entries {
			if e.Type == "file" {
				files = append(files, e)
			}
		}
		if len(files) > 0 {
			return ExampleSet{Repo: repo, Dir: dir, Files: files}, true
		}
	}
	return ExampleSet{}, false
}

// contentsItem is the raw contents API object for a single file.
type contentsItem struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	Type        string `json:"type"`
	Encoding    string `json:"encoding"`
	Content     string `json:"content"`
	DownloadURL string `json:"download_url"`
}

// parseContents decodes a contents API response, which is a JSON array for
// directories and a JSON object for files.
func parseContents(body []byte) (*Content, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, c2padocs.Errorf(c2padocs.EINTERNAL, "empty contents response")
	}

	if trimmed[0] == '[' {
		var entries []Entry
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, c2padocs.Errorf(c2padocs.EINTERNAL, "decode directory listing: %v", err)
		}
		return &Content{Entries: entries}, nil
	}

	var item contentsItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, c2padocs.Errorf(c2padocs.EINTERNAL, "decode file contents: %v", err)
	}

	file := &File{Name: item.Name, Path: item.Path, Size: item.Size}
	switch {
	case item.Encoding == "base64" && item.Content != "":
		// The API wraps base64 payloads with newlines.
		raw, err := base64.StdEncoding.DecodeString(strings.Map(dropSpace, item.Content))
		if err != nil {
			return nil, c2padocs.Errorf(c2padocs.EINTERNAL, "decode file body: %v", err)
		}
		file.Text = string(raw)
	case item.DownloadURL != "":
		// Inline content absent: the file is large or binary. Callers can
		// fetch DownloadURL themselves, subject to the allowlist.
		file.Binary = true
	default:
		file.Text = item.Content
	}

	return &Content{File: file}, nil
}

func dropSpace(r rune) rune {
	if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
		return -1
	}
	return r
}
