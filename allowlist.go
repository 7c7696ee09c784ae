package c2padocs

import "strings"

// Allowlist is the set of hosts a fetch may target. Patterns are either
// exact hosts ("api.github.com") or suffix wildcards ("*.c2pa.org", which
// matches any subdomain but not the apex). Matching is case-insensitive.
type Allowlist struct {
	exact    map[string]struct{}
	suffixes []string
}

// NewAllowlist creates an Allowlist from host patterns.
func NewAllowlist(patterns ...string) *Allowlist {
	a := &Allowlist{exact: make(map[string]struct{}, len(patterns))}
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(p, "*."); ok {
			a.suffixes = append(a.suffixes, "."+rest)
			continue
		}
		a.exact[p] = struct{}{}
	}
	return a
}

// Allows reports whether the host matches a configured pattern.
func (a *Allowlist) Allows(host string) bool {
	host = strings.ToLower(host)
	if _, ok := a.exact[host]; ok {
		return true
	}
	for _, suffix := range a.suffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

// Hosts returns the configured exact-host patterns. Wildcard patterns are
// returned in their original "*.domain" form. The order is unspecified.
func (a *Allowlist) Hosts() []string {
	hosts := make([]string, 0, len(a.exact)+len(a.suffixes))
	for h := range a.exact {
		hosts = append(hosts, h)
	}
	for _, s := range a.suffixes {
		hosts = append(hosts, "*"+s)
	}
	return hosts
}
