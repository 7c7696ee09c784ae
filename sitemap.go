package c2padocs

import "context"

// SitemapService discovers document URLs published in a host's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds document URLs from the site's sitemap, starting at
	// robots.txt and falling back to /sitemap.xml. When baseURL has a
	// non-root path, only URLs under that path are returned.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
