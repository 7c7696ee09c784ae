package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"

	"github.com/akowalczyk/c2padocs"
	"github.com/akowalczyk/c2padocs/cache"
	"github.com/akowalczyk/c2padocs/github"
	"github.com/akowalczyk/c2padocs/goquery"
	"github.com/akowalczyk/c2padocs/htmltomarkdown"
	dochttp "github.com/akowalczyk/c2padocs/http"
	docslog "github.com/akowalczyk/c2padocs/slog"
	"github.com/akowalczyk/c2padocs/spec"
	"github.com/akowalczyk/c2padocs/trafilatura"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher retained for graceful shutdown.
	Fetcher c2padocs.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("c2padocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'c2padocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := c2padocs.DefaultConfig()
	cfg.AllowedHosts = append(cfg.AllowedHosts, cli.Allow...)
	cfg.Token = cli.Token
	cfg.CacheSize = cli.CacheSize
	cfg.CacheTTL = cli.CacheTTL
	cfg.RetryAttempts = cli.Retries
	cfg.RetryBase = cli.RetryBase
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	logger := stdslog.New(stdslog.DiscardHandler)
	if cli.Verbose {
		logger = stdslog.New(stdslog.NewTextHandler(stderr, nil))
	}

	store := cache.New(cfg.CacheSize, cfg.CacheMaxBytes, cfg.CacheTTL)
	fetcher := c2padocs.Fetcher(dochttp.NewClient(cfg, store))
	if cli.Verbose {
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	}
	m.Fetcher = fetcher
	defer m.Close()

	deps.Fetcher = fetcher
	deps.Spec = spec.NewService(cfg, fetcher, goquery.NewParser(), spec.WithLogger(logger))
	deps.Repos = github.NewService(fetcher)
	deps.Sitemaps = docslog.NewLoggingSitemapService(dochttp.NewSitemapService(fetcher), logger)
	deps.Extractor = trafilatura.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}
