package http

import (
	"bufio"
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/akowalczyk/c2padocs"
	"github.com/akowalczyk/c2padocs/bloom"
	"github.com/beevik/etree"
)

// expectedSitemapURLs sizes the seen-URL filter for sitemap traversal.
const expectedSitemapURLs = 4096

// Ensure SitemapService implements c2padocs.SitemapService.
var _ c2padocs.SitemapService = (*SitemapService)(nil)

// SitemapService discovers document URLs from a site's sitemaps. All
// requests go through the shared Fetcher, so discovery is subject to the
// same allowlist, cache, and retry policy as every other fetch.
type SitemapService struct {
	fetcher c2padocs.Fetcher
}

// NewSitemapService creates a SitemapService backed by the given fetcher.
func NewSitemapService(fetcher c2padocs.Fetcher) *SitemapService {
	return &SitemapService{fetcher: fetcher}
}

// DiscoverURLs finds document URLs from the site's sitemaps, starting at
// robots.txt and falling back to /sitemap.xml. When baseURL has a non-root
// path, only URLs under that path are returned. Returns an empty slice
// (not nil) when no sitemaps exist.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the base path.
	root := *base
	root.Path = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := bloom.NewFilter(expectedSitemapURLs, 0.01)

	var all []string
	for _, sitemapURL := range sitemapURLs {
		urls, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seenURLs.Seen(u) {
				continue
			}
			seenURLs.Mark(u)
			all = append(all, u)
		}
	}

	if pathPrefix == "" {
		if all == nil {
			all = []string{}
		}
		return all, nil
	}

	filtered := []string{}
	for _, u := range all {
		if matchesPathPrefix(u, pathPrefix) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// findSitemapURLs discovers sitemap locations from robots.txt, falling back
// to the conventional /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.fetcher.Fetch(ctx, robotsURL, nil); err == nil {
		if sitemaps := parseSitemapsFromRobots(body); len(sitemaps) > 0 {
			return sitemaps, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	if _, err := s.fetcher.Fetch(ctx, sitemapURL, nil); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Missing sitemap is not an error; there is simply nothing to list.
		return nil, nil
	}
	return []string{sitemapURL}, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func parseSitemapsFromRobots(body []byte) []string {
	var sitemaps []string
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// processSitemap fetches and parses one sitemap, handling both urlset and
// sitemapindex documents. Nested indexes recurse; each sitemap is fetched
// at most once.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetcher.Fetch(ctx, sitemapURL, map[string]string{"Accept": "application/xml"})
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "parsing sitemap XML from %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, c2padocs.Errorf(c2padocs.EINVALID, "empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested := strings.TrimSpace(loc.Text())
			if nested == "" {
				continue
			}
			urls, err := s.processSitemap(ctx, nested, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// matchesPathPrefix reports whether a URL's path starts with the prefix,
// respecting path boundaries ("/specs" matches "/specs/x" but not
// "/specifications").
func matchesPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix)
}
