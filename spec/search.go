package spec

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/akowalczyk/c2padocs"
)

// Relevance weights. Title matches rank strictly above body-only matches;
// the body component is dampened by section length so long sections do not
// dominate on raw frequency.
const (
	titleWeight        = 3.0
	sectionHintBoost   = 2.0
	bodyLengthDampener = 2000.0
)

// Search ranks all indexed sections against the query and returns at most
// q.Limit results, highest score first. Sources that have never been
// indexed are indexed on first use. An empty query or a query with no
// matches returns an empty slice, never an error.
func (s *Service) Search(ctx context.Context, q c2padocs.SearchQuery) ([]c2padocs.SearchResult, error) {
	terms := tokenize(q.Query)
	if len(terms) == 0 {
		return []c2padocs.SearchResult{}, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	s.mu.RLock()
	order := make([]string, len(s.order))
	copy(order, s.order)
	s.mu.RUnlock()

	for _, sourceID := range order {
		if err := s.EnsureIndexed(ctx, sourceID); err != nil {
			return nil, err
		}
	}

	results := []c2padocs.SearchResult{}
	for _, section := range s.snapshot() {
		score := scoreSection(section, terms)
		if score == 0 {
			continue
		}
		if q.Section != "" && section.Number != "" && strings.Contains(section.Number, q.Section) {
			score += sectionHintBoost
		}
		results = append(results, c2padocs.SearchResult{
			Section: section,
			Score:   score,
			Snippet: buildSnippet(section.Text, terms, s.snippetMax),
		})
	}

	// Stable sort preserves document order among equal scores: the section
	// appearing earlier in the source wins ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// tokenize splits a query into lowercase terms on non-alphanumeric runes.
func tokenize(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// scoreSection computes the weighted term-frequency relevance of a section.
func scoreSection(section c2padocs.Section, terms []string) float64 {
	title := strings.ToLower(section.Title)
	body := strings.ToLower(section.Text)

	var titleHits, bodyHits float64
	for _, term := range terms {
		titleHits += float64(strings.Count(title, term))
		bodyHits += float64(strings.Count(body, term))
	}

	score := titleWeight * titleHits
	score += bodyHits / (1 + float64(len(body))/bodyLengthDampener)
	return score
}
