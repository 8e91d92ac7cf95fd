package crawl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/avoronin/trendscout"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for Bloom filter deduplication across seeds.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Ensure Ingestor implements trendscout.Ingestor at compile time.
var _ trendscout.Ingestor = (*Ingestor)(nil)

// Ingestor runs ingestion: seeds (and optionally their adjacent links)
// are produced into documents and upserted into the corpus. A failed link
// is logged and skipped; one bad page never aborts the run.
type Ingestor struct {
	Producer trendscout.DocumentProducer
	Links    trendscout.LinkCollector
	Corpus   trendscout.CorpusService
	Limiter  trendscout.DomainLimiter

	// Concurrency bounds parallel page fetches. Defaults to 3.
	Concurrency int

	Logger *slog.Logger
}

// Ingest processes the seed URLs and returns how many documents were added.
func (in *Ingestor) Ingest(ctx context.Context, seeds []string, opts trendscout.IngestOptions) (int, error) {
	candidates := in.collectCandidates(ctx, seeds, opts)

	concurrency := in.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	var added atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, link := range candidates {
		g.Go(func() error {
			ok, err := in.ingestOne(gctx, link, opts.Tags)
			if err != nil {
				in.logger().Warn("ingest failed", "url", link, "error", err)
				return nil
			}
			if ok {
				added.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(added.Load()), err
	}

	return int(added.Load()), ctx.Err()
}

// collectCandidates expands seeds into the deduplicated list of URLs to
// ingest, in discovery order.
func (in *Ingestor) collectCandidates(ctx context.Context, seeds []string, opts trendscout.IngestOptions) []string {
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)

	var candidates []string
	push := func(url string) {
		if frontier.Push(url) {
			candidates = append(candidates, url)
		}
	}

	for _, seed := range seeds {
		push(seed)

		if !opts.CrawlAdjacent || in.Links == nil {
			continue
		}
		if err := in.Limiter.Wait(ctx, trendscout.Host(seed)); err != nil {
			return candidates
		}
		links, err := in.Links.CollectLinks(ctx, seed, opts.MaxLinks)
		if err != nil {
			in.logger().Warn("link collection failed", "seed", seed, "error", err)
			continue
		}
		for _, link := range links {
			push(link)
		}
	}

	return candidates
}

// ingestOne produces and stores a single document.
// Returns false when the strict-dedup check says the page is already stored.
func (in *Ingestor) ingestOne(ctx context.Context, url string, tags []string) (bool, error) {
	if err := in.Limiter.Wait(ctx, trendscout.Host(url)); err != nil {
		return false, err
	}

	doc, err := in.Producer.Produce(ctx, url)
	if err != nil {
		return false, err
	}

	exists, err := in.Corpus.ExistsByDedupKey(ctx, doc.URL, doc.Title)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	doc.Tags = tags
	if err := in.Corpus.UpsertDocument(ctx, doc); err != nil {
		return false, err
	}

	in.logger().Info("document ingested",
		"url", doc.URL,
		"domain", doc.Domain,
		"published_at", doc.PublishedAt.Format("2006-01-02"),
	)
	return true, nil
}

func (in *Ingestor) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.Default()
}
