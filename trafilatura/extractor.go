// Package trafilatura extracts article content from HTML pages.
package trafilatura

import (
	"strings"

	"github.com/avoronin/trendscout"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements trendscout.Extractor at compile time.
var _ trendscout.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article text,
// title and publication date from HTML, dropping boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*trendscout.ExtractResult, error) {
	if rawHTML == "" {
		return nil, trendscout.Errorf(trendscout.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &trendscout.ExtractResult{
		Title:     result.Metadata.Title,
		Text:      result.ContentText,
		Published: result.Metadata.Date,
	}, nil
}
