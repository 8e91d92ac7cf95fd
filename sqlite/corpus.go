package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avoronin/trendscout"
)

// dateLayout is how published dates are stored: calendar dates, no time part.
const dateLayout = "2006-01-02"

// Compile-time interface verification.
var _ trendscout.CorpusService = (*CorpusService)(nil)

// CorpusService implements trendscout.CorpusService using SQLite.
type CorpusService struct {
	db    *DB
	audit trendscout.AuditLog
	now   func() time.Time
}

// Option configures a CorpusService.
type Option func(*CorpusService)

// WithAuditLog makes every upsert also append the raw record to the log.
func WithAuditLog(a trendscout.AuditLog) Option {
	return func(s *CorpusService) {
		s.audit = a
	}
}

// WithNow overrides the clock used for window calculations. Testing hook.
func WithNow(now func() time.Time) Option {
	return func(s *CorpusService) {
		s.now = now
	}
}

// NewCorpusService creates a new CorpusService.
func NewCorpusService(db *DB, opts ...Option) *CorpusService {
	s := &CorpusService{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpsertDocument inserts or replaces a document keyed by its stable ID.
func (s *CorpusService) UpsertDocument(ctx context.Context, doc *trendscout.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = trendscout.DocumentID(doc.URL, doc.Title)
	if doc.Domain == "" {
		doc.Domain = trendscout.Host(doc.URL)
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	tags, err := json.Marshal(doc.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	// Single statement, so the dedup-key invariant cannot be observed
	// half-written even with concurrent ingesters.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, url, domain, lang, published_at, title, tags, summary, body, dedup_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url, domain = excluded.domain, lang = excluded.lang,
			published_at = excluded.published_at, title = excluded.title,
			tags = excluded.tags, summary = excluded.summary, body = excluded.body,
			dedup_key = excluded.dedup_key
	`, doc.ID, doc.URL, doc.Domain, doc.Lang, doc.PublishedAt.Format(dateLayout),
		doc.Title, string(tags), doc.Summary, doc.Text, trendscout.DedupKey(doc.URL, doc.Title))
	if err != nil {
		return err
	}

	if s.audit != nil {
		if err := s.audit.Append(ctx, doc); err != nil {
			return fmt.Errorf("failed to append audit log: %w", err)
		}
	}

	return nil
}

// ExistsByDedupKey reports whether a document with the same normalized
// URL+title is already stored.
func (s *CorpusService) ExistsByDedupKey(ctx context.Context, url, title string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM documents WHERE dedup_key = ? LIMIT 1
	`, trendscout.DedupKey(url, title)).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RecentDocuments returns documents published within the trailing window
// matching any of the keywords in title or body, newest first.
func (s *CorpusService) RecentDocuments(ctx context.Context, keywords []string, windowDays int) ([]*trendscout.Document, error) {
	since := s.now().UTC().AddDate(0, 0, -windowDays).Format(dateLayout)

	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, domain, lang, published_at, title, tags, summary, body FROM documents WHERE published_at >= ?")
	args = append(args, since)

	// OR-match each keyword case-insensitively against title or body.
	// No keywords means everything in the window qualifies.
	var conds []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		conds = append(conds, "(instr(lower(title), ?) > 0 OR instr(lower(body), ?) > 0)")
		args = append(args, kw, kw)
	}
	if len(conds) > 0 {
		query.WriteString(" AND (")
		query.WriteString(strings.Join(conds, " OR "))
		query.WriteString(")")
	}

	query.WriteString(" ORDER BY published_at DESC, id ASC LIMIT ?")
	args = append(args, trendscout.MaxRecentDocuments)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*trendscout.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// scanDocument reads one documents row.
func scanDocument(rows *sql.Rows) (*trendscout.Document, error) {
	var doc trendscout.Document
	var publishedAt, tags string

	if err := rows.Scan(&doc.ID, &doc.URL, &doc.Domain, &doc.Lang, &publishedAt,
		&doc.Title, &tags, &doc.Summary, &doc.Text); err != nil {
		return nil, err
	}

	var err error
	doc.PublishedAt, err = parseDate(publishedAt, "published_at")
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &doc.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	return &doc, nil
}
