package trendscout

import "time"

// Config carries the pipeline settings. It is passed explicitly into
// constructors; decision logic never reads the environment.
type Config struct {
	// EvidenceWindowDays is the trailing span within which documents count
	// toward the evidence threshold.
	EvidenceWindowDays int

	// RelaxedEvidence switches the evidence policy to item counting.
	// Testing override only.
	RelaxedEvidence bool

	// MaxSnippets caps how many retrieved documents enter the prompt.
	MaxSnippets int

	// SnippetMaxChars truncates each snippet's body text for prompt size.
	SnippetMaxChars int

	// Location is the locale assumed for queries that do not name one.
	Location string

	// QueryBudget is the wall-clock ceiling for one query end to end.
	QueryBudget time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		EvidenceWindowDays: 90,
		MaxSnippets:        100,
		SnippetMaxChars:    1200,
		Location:           DefaultLocation,
		QueryBudget:        120 * time.Second,
	}
}
