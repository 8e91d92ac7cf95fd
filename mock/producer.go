package mock

import (
	"context"

	"github.com/avoronin/trendscout"
)

var _ trendscout.DocumentProducer = (*DocumentProducer)(nil)

// DocumentProducer is a mock implementation of trendscout.DocumentProducer.
type DocumentProducer struct {
	ProduceFn func(ctx context.Context, url string) (*trendscout.Document, error)
}

func (p *DocumentProducer) Produce(ctx context.Context, url string) (*trendscout.Document, error) {
	return p.ProduceFn(ctx, url)
}

var _ trendscout.LinkCollector = (*LinkCollector)(nil)

// LinkCollector is a mock implementation of trendscout.LinkCollector.
type LinkCollector struct {
	CollectLinksFn func(ctx context.Context, landingURL string, max int) ([]string, error)
}

func (c *LinkCollector) CollectLinks(ctx context.Context, landingURL string, max int) ([]string, error) {
	return c.CollectLinksFn(ctx, landingURL, max)
}

var _ trendscout.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of trendscout.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}

var _ trendscout.Ingestor = (*Ingestor)(nil)

// Ingestor is a mock implementation of trendscout.Ingestor.
type Ingestor struct {
	IngestFn func(ctx context.Context, seeds []string, opts trendscout.IngestOptions) (int, error)
}

func (in *Ingestor) Ingest(ctx context.Context, seeds []string, opts trendscout.IngestOptions) (int, error) {
	return in.IngestFn(ctx, seeds, opts)
}
