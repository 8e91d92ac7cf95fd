// Package mock provides function-field mock implementations of the
// trendscout interfaces for testing.
package mock

import (
	"context"

	"github.com/avoronin/trendscout"
)

var _ trendscout.CorpusService = (*CorpusService)(nil)

// CorpusService is a mock implementation of trendscout.CorpusService.
type CorpusService struct {
	UpsertDocumentFn   func(ctx context.Context, doc *trendscout.Document) error
	ExistsByDedupKeyFn func(ctx context.Context, url, title string) (bool, error)
	RecentDocumentsFn  func(ctx context.Context, keywords []string, windowDays int) ([]*trendscout.Document, error)
}

func (s *CorpusService) UpsertDocument(ctx context.Context, doc *trendscout.Document) error {
	return s.UpsertDocumentFn(ctx, doc)
}

func (s *CorpusService) ExistsByDedupKey(ctx context.Context, url, title string) (bool, error) {
	return s.ExistsByDedupKeyFn(ctx, url, title)
}

func (s *CorpusService) RecentDocuments(ctx context.Context, keywords []string, windowDays int) ([]*trendscout.Document, error) {
	return s.RecentDocumentsFn(ctx, keywords, windowDays)
}
