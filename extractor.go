package trendscout

import "time"

// ExtractResult holds the article content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title taken from metadata.
	Title string

	// Text is the main content as plain text, boilerplate removed.
	Text string

	// Published is the publication date from page metadata.
	// Zero when the page does not declare one.
	Published time.Time
}

// Extractor extracts article content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
