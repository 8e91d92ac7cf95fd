package mock

import "github.com/avoronin/trendscout"

var _ trendscout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of trendscout.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*trendscout.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*trendscout.ExtractResult, error) {
	return e.ExtractFn(html)
}
