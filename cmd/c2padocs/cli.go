package main

import (
	"context"
	"io"
	"time"

	"github.com/akowalczyk/c2padocs"
	"github.com/akowalczyk/c2padocs/github"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    c2padocs.Config
	Fetcher   c2padocs.Fetcher
	Spec      c2padocs.SpecService
	Repos     *github.Service
	Sitemaps  c2padocs.SitemapService
	Extractor c2padocs.Extractor
	Converter c2padocs.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log requests and index rebuilds to stderr"`
	Allow     []string      `help:"Additional allowed hosts (repeatable, supports *.domain)"`
	Token     string        `env:"C2PADOCS_GITHUB_TOKEN" help:"GitHub token for authenticated API requests"`
	CacheSize int           `default:"64" help:"Maximum cached responses"`
	CacheTTL  time.Duration `default:"15m" help:"Cached response lifetime"`
	Retries   int           `default:"4" help:"Fetch attempts per request"`
	RetryBase time.Duration `default:"500ms" help:"First backoff delay; later delays grow exponentially"`

	Search   SearchCmd   `cmd:"" help:"Search the C2PA specification"`
	Sections SectionsCmd `cmd:"" help:"List indexed specification sections"`
	Fetch    FetchCmd    `cmd:"" help:"Fetch a raw document from an allowed host"`
	Repo     RepoCmd     `cmd:"" help:"Fetch a file or list a directory from the C2PA repositories"`
	Examples ExamplesCmd `cmd:"" help:"List example files across the language repositories"`
	Page     PageCmd     `cmd:"" help:"Fetch a documentation page and print it as Markdown"`
	Versions VersionsCmd `cmd:"" help:"Discover published specification versions"`
	API      APICmd      `cmd:"" name:"api" help:"Show the API reference URL for a library"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search terms"`
	Section string `short:"s" help:"Section number hint like '3.4'"`
	Limit   int    `short:"n" help:"Maximum results (defaults to the configured limit)"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Source string `arg:"" optional:"" help:"Source ID (defaults to the current specification version)"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string `arg:"" help:"Document URL"`
	Accept string `help:"Accept header to send"`
}

// RepoCmd is the "repo" subcommand.
type RepoCmd struct {
	Repo string `arg:"" help:"Repository key: spec, rs, python, js"`
	Path string `arg:"" optional:"" default:"README.md" help:"Path within the repository"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	Language string `arg:"" optional:"" default:"all" help:"rust, python, javascript, or all"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	URL string `arg:"" help:"Documentation page URL"`
}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct{}

// APICmd is the "api" subcommand.
type APICmd struct {
	Library string `arg:"" help:"Library name: rust, python, javascript"`
}
