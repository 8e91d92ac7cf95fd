package trendscout

import "sort"

// MinIndependentSources is the evidence threshold: a synthesis needs at
// least this many independent sources within the evidence window.
const MinIndependentSources = 2

// EvidencePolicy decides whether a retrieved evidence set is strong enough
// to synthesize from. It is a pure value with no side effects.
type EvidencePolicy struct {
	// Relaxed counts items instead of distinct domains. It exists for
	// controlled testing only and must be enabled explicitly.
	Relaxed bool
}

// Sufficient reports whether items clear the evidence bar and returns the
// sorted set of distinct source domains represented. Independence is
// literal: each distinct host string counts once.
func (p EvidencePolicy) Sufficient(items []*Document) (bool, []string) {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[Host(it.URL)] = struct{}{}
	}
	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	if len(items) == 0 {
		return false, domains
	}
	if p.Relaxed {
		return len(items) >= MinIndependentSources, domains
	}
	return len(domains) >= MinIndependentSources, domains
}
