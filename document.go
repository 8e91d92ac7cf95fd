package trendscout

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Document is one ingested unit of evidence: a scraped article reduced to
// plain text plus source metadata.
type Document struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Domain      string    `json:"domain"`
	Lang        string    `json:"lang"`
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	Summary     string    `json:"summary,omitempty"`
	Text        string    `json:"text"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.PublishedAt.IsZero() {
		return Errorf(EINVALID, "document published date required")
	}
	return nil
}

// DocumentID derives the stable identity of a document. Re-ingesting the
// same URL and title yields the same ID, which is what makes upserts refresh
// a document in place. The title participates so that soft duplicates (same
// URL, different title) coexist as separate documents.
func DocumentID(rawURL, title string) string {
	return hashString(strings.TrimSpace(rawURL) + "\n" + strings.TrimSpace(title))
}

// DedupKey derives the strict-dedup identity from the normalized URL and
// title. Two documents sharing a URL but carrying different titles get
// distinct keys: soft duplicates are allowed.
func DedupKey(rawURL, title string) string {
	return hashString(strings.TrimSpace(rawURL) + "||" + strings.TrimSpace(title))
}

// hashString computes xxHash of s and returns hex string.
func hashString(s string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(s))
	return hex.EncodeToString(b[:])
}

// Host extracts the full host of a URL. Each distinct host string counts as
// an independent source; subdomains of the same publisher are intentionally
// not collapsed.
func Host(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}

// MaxRecentDocuments bounds the size of a RecentDocuments result.
const MaxRecentDocuments = 500

// CorpusService is the durable, deduplicated document store.
type CorpusService interface {
	// UpsertDocument inserts or replaces a document keyed by its stable ID.
	// The write is atomic per document.
	UpsertDocument(ctx context.Context, doc *Document) error

	// ExistsByDedupKey reports whether a document with the same normalized
	// URL+title is already stored. Ingestion must consult this before
	// skipping a candidate.
	ExistsByDedupKey(ctx context.Context, url, title string) (bool, error)

	// RecentDocuments returns documents published within the trailing window,
	// each keyword OR-matched case-insensitively against title or body text.
	// An empty keyword list matches every document in the window. Results are
	// ordered by published date descending and capped at MaxRecentDocuments.
	RecentDocuments(ctx context.Context, keywords []string, windowDays int) ([]*Document, error)
}

// AuditLog records every ingested document for external auditing.
// The core never reads it back.
type AuditLog interface {
	Append(ctx context.Context, doc *Document) error
}
