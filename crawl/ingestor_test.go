package crawl_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avoronin/trendscout"
	"github.com/avoronin/trendscout/crawl"
	"github.com/avoronin/trendscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCorpus records upserts behind a mutex so concurrent workers can share it.
type memCorpus struct {
	mu   sync.Mutex
	docs []*trendscout.Document
}

func (c *memCorpus) service() *mock.CorpusService {
	return &mock.CorpusService{
		UpsertDocumentFn: func(_ context.Context, doc *trendscout.Document) error {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.docs = append(c.docs, doc)
			return nil
		},
		ExistsByDedupKeyFn: func(_ context.Context, url, title string) (bool, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			for _, doc := range c.docs {
				if doc.URL == url && doc.Title == title {
					return true, nil
				}
			}
			return false, nil
		},
		RecentDocumentsFn: func(context.Context, []string, int) ([]*trendscout.Document, error) {
			return nil, nil
		},
	}
}

func newTestProducer() *mock.DocumentProducer {
	return &mock.DocumentProducer{
		ProduceFn: func(_ context.Context, url string) (*trendscout.Document, error) {
			return &trendscout.Document{
				URL:         url,
				Domain:      trendscout.Host(url),
				Title:       "Title for " + url,
				Text:        "body",
				PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
}

func TestIngestor_Ingest(t *testing.T) {
	t.Parallel()

	t.Run("ingests all seeds", func(t *testing.T) {
		t.Parallel()

		corpus := &memCorpus{}
		in := &crawl.Ingestor{
			Producer: newTestProducer(),
			Corpus:   corpus.service(),
			Limiter:  &mock.DomainLimiter{},
		}

		added, err := in.Ingest(context.Background(), []string{
			"https://a.example/1",
			"https://b.example/2",
		}, trendscout.IngestOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, added)
		assert.Len(t, corpus.docs, 2)
	})

	t.Run("skips pages already in the corpus", func(t *testing.T) {
		t.Parallel()

		corpus := &memCorpus{
			docs: []*trendscout.Document{{
				URL:   "https://a.example/1",
				Title: "Title for https://a.example/1",
			}},
		}
		in := &crawl.Ingestor{
			Producer: newTestProducer(),
			Corpus:   corpus.service(),
			Limiter:  &mock.DomainLimiter{},
		}

		added, err := in.Ingest(context.Background(), []string{
			"https://a.example/1",
			"https://a.example/2",
		}, trendscout.IngestOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, added)
	})

	t.Run("collects adjacent links when enabled", func(t *testing.T) {
		t.Parallel()

		corpus := &memCorpus{}
		in := &crawl.Ingestor{
			Producer: newTestProducer(),
			Corpus:   corpus.service(),
			Limiter:  &mock.DomainLimiter{},
			Links: &mock.LinkCollector{
				CollectLinksFn: func(_ context.Context, landingURL string, max int) ([]string, error) {
					assert.Equal(t, 5, max)
					return []string{
						landingURL + "/post/1",
						landingURL + "/post/2",
					}, nil
				},
			},
		}

		added, err := in.Ingest(context.Background(), []string{"https://a.example"},
			trendscout.IngestOptions{CrawlAdjacent: true, MaxLinks: 5})
		require.NoError(t, err)
		assert.Equal(t, 3, added)
	})

	t.Run("a failed page does not abort the run", func(t *testing.T) {
		t.Parallel()

		corpus := &memCorpus{}
		in := &crawl.Ingestor{
			Producer: &mock.DocumentProducer{
				ProduceFn: func(_ context.Context, url string) (*trendscout.Document, error) {
					if strings.Contains(url, "broken") {
						return nil, trendscout.Errorf(trendscout.EUNAVAILABLE, "fetch failed")
					}
					return &trendscout.Document{
						URL:         url,
						Title:       "T",
						Text:        "body",
						PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					}, nil
				},
			},
			Corpus:  corpus.service(),
			Limiter: &mock.DomainLimiter{},
		}

		added, err := in.Ingest(context.Background(), []string{
			"https://a.example/broken",
			"https://a.example/ok",
		}, trendscout.IngestOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, added)
	})

	t.Run("failed link collection falls back to the seed itself", func(t *testing.T) {
		t.Parallel()

		corpus := &memCorpus{}
		in := &crawl.Ingestor{
			Producer: newTestProducer(),
			Corpus:   corpus.service(),
			Limiter:  &mock.DomainLimiter{},
			Links: &mock.LinkCollector{
				CollectLinksFn: func(context.Context, string, int) ([]string, error) {
					return nil, trendscout.Errorf(trendscout.EUNAVAILABLE, "landing page unreachable")
				},
			},
		}

		added, err := in.Ingest(context.Background(), []string{"https://a.example"},
			trendscout.IngestOptions{CrawlAdjacent: true, MaxLinks: 5})
		require.NoError(t, err)
		assert.Equal(t, 1, added)
	})

	t.Run("stamps run tags onto ingested documents", func(t *testing.T) {
		t.Parallel()

		corpus := &memCorpus{}
		in := &crawl.Ingestor{
			Producer: newTestProducer(),
			Corpus:   corpus.service(),
			Limiter:  &mock.DomainLimiter{},
		}

		_, err := in.Ingest(context.Background(), []string{"https://a.example/1"},
			trendscout.IngestOptions{Tags: []string{"coffee", "moscow"}})
		require.NoError(t, err)
		require.Len(t, corpus.docs, 1)
		assert.Equal(t, []string{"coffee", "moscow"}, corpus.docs[0].Tags)
	})

	t.Run("waits on the limiter per domain", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string

		corpus := &memCorpus{}
		in := &crawl.Ingestor{
			Producer: newTestProducer(),
			Corpus:   corpus.service(),
			Limiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					mu.Lock()
					domains = append(domains, domain)
					mu.Unlock()
					return nil
				},
			},
		}

		_, err := in.Ingest(context.Background(), []string{"https://a.example/1"}, trendscout.IngestOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.example"}, domains)
	})
}
