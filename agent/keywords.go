// Package agent implements the query pipeline: intake of free text into a
// normalized query, keyword-expanded retrieval against the corpus, the
// evidence gate, a single generation call, and the total repair stage that
// coerces whatever came back into the fixed answer schema.
package agent

import "strings"

// synonymCluster expands a well-known business sphere into retrieval
// keywords. The key matches by substring against the lowercased query
// domain, so both "coffee" and "coffee shop" pull in the cafe cluster.
type synonymCluster struct {
	key      string
	keywords []string
}

// Clusters are an ordered list so expansion is stable run to run.
var synonyms = []synonymCluster{
	{"coffee", []string{"coffee", "cafe", "кофе", "кофейня", "кафе", "horeca", "foodservice"}},
	{"кофе", []string{"кофе", "кофейня", "coffee", "cafe", "кафе", "horeca", "foodservice"}},
	{"restaur", []string{"restaurant", "ресторан", "horeca", "foodservice"}},
	{"ресторан", []string{"ресторан", "restaurant", "horeca", "foodservice"}},
	{"retail", []string{"retail", "ритейл", "розница"}},
}

// ExpandKeywords turns a query domain into the retrieval keyword list: the
// domain itself first, then any synonym cluster whose key is a substring of
// the domain, deduplicated preserving order.
func ExpandKeywords(domain string) []string {
	lower := strings.ToLower(strings.TrimSpace(domain))

	candidates := []string{lower}
	for _, cluster := range synonyms {
		if strings.Contains(lower, cluster.key) {
			candidates = append(candidates, cluster.keywords...)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, kw := range candidates {
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}
	return keywords
}
