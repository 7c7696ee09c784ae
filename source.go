package c2padocs

import "fmt"

// DefaultSpecVersion is the specification version indexed by default.
const DefaultSpecVersion = "2.2"

// SpecRoot is the canonical specification site.
const SpecRoot = "https://spec.c2pa.org/"

// Source identifies one indexable specification document.
type Source struct {
	// ID names the source, e.g. "spec-2.2".
	ID string `json:"id"`

	// URL is the location of the source's HTML document.
	URL string `json:"url"`

	// Version is the specification version the document describes.
	Version string `json:"version"`
}

// SpecURL returns the published HTML location for a specification version.
func SpecURL(version string) string {
	return fmt.Sprintf("https://c2pa.org/specifications/specifications/%s/specs/C2PA_Specification.html", version)
}

// SpecSource returns the Source for a specification version.
func SpecSource(version string) Source {
	return Source{
		ID:      "spec-" + version,
		URL:     SpecURL(version),
		Version: version,
	}
}

// DefaultSources returns the sources indexed when none are configured.
func DefaultSources() []Source {
	return []Source{SpecSource(DefaultSpecVersion)}
}

// DefaultAllowedHosts returns the hosts fetches may target by default.
func DefaultAllowedHosts() []string {
	return []string{
		"spec.c2pa.org",
		"c2pa.org",
		"api.github.com",
		"contentauthenticity.org",
		"docs.rs",
		"contentauth.github.io",
	}
}

// Repos maps short repository keys to their GitHub owner/name slugs.
func Repos() map[string]string {
	return map[string]string{
		"spec":   "contentauth/c2pa-spec",
		"rs":     "contentauth/c2pa-rs",
		"python": "contentauth/c2pa-python",
		"js":     "contentauth/c2pa-js",
	}
}

// APIReferences maps library names to their API reference URLs.
func APIReferences() map[string]string {
	return map[string]string{
		"rust":       "https://docs.rs/c2pa/latest/c2pa/",
		"python":     "https://contentauth.github.io/c2pa-python/",
		"javascript": "https://contentauth.github.io/c2pa-js/",
	}
}
