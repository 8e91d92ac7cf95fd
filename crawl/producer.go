// Package crawl implements the document producer: it turns seed URLs and
// landing pages into corpus documents, with per-domain rate limiting,
// fetch retries and Bloom-filter deduplication of candidate links.
package crawl

import (
	"context"
	"log/slog"
	"time"
	"unicode"

	"github.com/avoronin/trendscout"
	"github.com/avoronin/trendscout/goquery"
)

// langDetectLimit bounds how much text the language heuristic scans.
const langDetectLimit = 4096

// Ensure Producer implements trendscout.DocumentProducer at compile time.
var _ trendscout.DocumentProducer = (*Producer)(nil)

// Producer turns a URL into a Document: fetch with retries, extract title
// and plain text, normalize the published date.
type Producer struct {
	Fetcher   trendscout.Fetcher
	Extractor trendscout.Extractor

	// RetryDelays overrides the fetch backoff schedule. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// LangHint is assumed when the text itself gives no signal.
	LangHint string

	Logger *slog.Logger

	// Now overrides the clock used for the published-date fallback.
	Now func() time.Time
}

// Produce fetches and extracts the page at url.
func (p *Producer) Produce(ctx context.Context, url string) (*trendscout.Document, error) {
	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetry(ctx, url, p.Fetcher.Fetch, p.Logger, delays)
	if err != nil {
		return nil, err
	}

	res, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	title := res.Title
	if title == "" {
		title = url
	}

	return &trendscout.Document{
		URL:         url,
		Domain:      trendscout.Host(url),
		Lang:        detectLang(res.Text, p.LangHint),
		PublishedAt: p.publishedDate(res, html),
		Title:       title,
		Text:        res.Text,
	}, nil
}

// publishedDate normalizes the publication date. Extractor metadata wins;
// then declared meta tags; a page with no parseable date gets the ingestion
// date rather than failing.
func (p *Producer) publishedDate(res *trendscout.ExtractResult, html string) time.Time {
	if !res.Published.IsZero() {
		return dateOnly(res.Published)
	}
	if t, ok := goquery.MetaDate(html); ok {
		return dateOnly(t)
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return dateOnly(now().UTC())
}

// dateOnly strips the time-of-day part; the corpus stores calendar dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// detectLang is a light heuristic: any Cyrillic means "ru", otherwise the
// hint, otherwise "en".
func detectLang(text, hint string) string {
	for i, r := range text {
		if i > langDetectLimit {
			break
		}
		if unicode.Is(unicode.Cyrillic, r) {
			return "ru"
		}
	}
	if hint != "" {
		return hint
	}
	return "en"
}
