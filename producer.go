package trendscout

import "context"

// DocumentProducer turns a URL into a Document: fetch, extract title and
// plain text, normalize the published date. It is the ingestion collaborator
// of the corpus store and may retry fetches internally; the core pipeline
// never does.
type DocumentProducer interface {
	Produce(ctx context.Context, url string) (*Document, error)
}

// LinkCollector gathers adjacent same-host article links from a landing
// page, capped at max, order-preserving deduplicated.
type LinkCollector interface {
	CollectLinks(ctx context.Context, landingURL string, max int) ([]string, error)
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}

// IngestOptions control one ingest run.
type IngestOptions struct {
	// CrawlAdjacent also collects same-host links from each seed,
	// treating the seed as a landing page.
	CrawlAdjacent bool

	// MaxLinks caps the adjacent links collected per seed.
	MaxLinks int

	// Tags are stamped onto every document ingested in this run.
	Tags []string
}

// Ingestor loads seed URLs (and optionally their adjacent links) into the
// corpus and reports how many documents were added.
type Ingestor interface {
	Ingest(ctx context.Context, seeds []string, opts IngestOptions) (int, error)
}
