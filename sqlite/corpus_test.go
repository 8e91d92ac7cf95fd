package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/avoronin/trendscout"
	"github.com/avoronin/trendscout/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestCorpus(t *testing.T) *sqlite.CorpusService {
	t.Helper()
	db := setupTestDB(t)
	return sqlite.NewCorpusService(db, sqlite.WithNow(func() time.Time { return testNow }))
}

func testDoc(url, title string, daysAgo int) *trendscout.Document {
	return &trendscout.Document{
		URL:         url,
		Title:       title,
		Lang:        "en",
		PublishedAt: testNow.AddDate(0, 0, -daysAgo),
		Tags:        []string{"startup", "trend"},
		Text:        "Body text about the " + title + " market.",
	}
}

func TestCorpusService_UpsertDocument(t *testing.T) {
	t.Parallel()

	t.Run("assigns stable id and domain", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		doc := testDoc("https://a.example/post/1", "Coffee subscriptions", 5)
		require.NoError(t, svc.UpsertDocument(ctx, doc))

		assert.Equal(t, trendscout.DocumentID("https://a.example/post/1", "Coffee subscriptions"), doc.ID)
		assert.Equal(t, "a.example", doc.Domain)
	})

	t.Run("re-ingesting the same URL updates in place", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		doc := testDoc("https://a.example/post/1", "Coffee subscriptions", 5)
		require.NoError(t, svc.UpsertDocument(ctx, doc))

		refreshed := testDoc("https://a.example/post/1", "Coffee subscriptions", 5)
		refreshed.Text = "Refreshed body text about coffee."
		require.NoError(t, svc.UpsertDocument(ctx, refreshed))

		docs, err := svc.RecentDocuments(ctx, nil, 30)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Refreshed body text about coffee.", docs[0].Text)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)

		err := svc.UpsertDocument(context.Background(), &trendscout.Document{})
		require.Error(t, err)
		assert.Equal(t, trendscout.EINVALID, trendscout.ErrorCode(err))
	})

	t.Run("round-trips tags and language", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		doc := testDoc("https://a.example/post/1", "Coffee subscriptions", 5)
		require.NoError(t, svc.UpsertDocument(ctx, doc))

		docs, err := svc.RecentDocuments(ctx, nil, 30)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, []string{"startup", "trend"}, docs[0].Tags)
		assert.Equal(t, "en", docs[0].Lang)
	})
}

func TestCorpusService_ExistsByDedupKey(t *testing.T) {
	t.Parallel()

	t.Run("exact URL and title pair dedups", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://a.example/p", "One title", 1)))

		exists, err := svc.ExistsByDedupKey(ctx, "https://a.example/p", "One title")
		require.NoError(t, err)
		assert.True(t, exists)

		// Trimming is part of key normalization.
		exists, err = svc.ExistsByDedupKey(ctx, "  https://a.example/p ", " One title ")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("same URL with a different title is a soft duplicate", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://a.example/p", "One title", 1)))

		exists, err := svc.ExistsByDedupKey(ctx, "https://a.example/p", "Another title")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unknown pair does not exist", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)

		exists, err := svc.ExistsByDedupKey(context.Background(), "https://b.example/q", "Nope")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCorpusService_RecentDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by window", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://a.example/new", "Fresh coffee news", 10)))
		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://b.example/old", "Stale coffee news", 120)))

		docs, err := svc.RecentDocuments(ctx, nil, 90)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "https://a.example/new", docs[0].URL)
	})

	t.Run("keyword matches title or body case-insensitively", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		inTitle := testDoc("https://a.example/1", "Coffee subscriptions take off", 5)
		inBody := testDoc("https://b.example/2", "HoReCa report", 5)
		inBody.Text = "Specialty COFFEE is growing in office parks."
		miss := testDoc("https://c.example/3", "EdTech funding", 5)
		miss.Text = "Nothing about beverages here."

		require.NoError(t, svc.UpsertDocument(ctx, inTitle))
		require.NoError(t, svc.UpsertDocument(ctx, inBody))
		require.NoError(t, svc.UpsertDocument(ctx, miss))

		docs, err := svc.RecentDocuments(ctx, []string{"coffee"}, 90)
		require.NoError(t, err)
		require.Len(t, docs, 2)
	})

	t.Run("keywords are OR-combined", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://a.example/1", "Coffee market", 5)))
		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://b.example/2", "Cafe openings", 5)))

		docs, err := svc.RecentDocuments(ctx, []string{"coffee", "cafe"}, 90)
		require.NoError(t, err)
		require.Len(t, docs, 2)
	})

	t.Run("orders newest first", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		for i, daysAgo := range []int{30, 3, 15} {
			url := fmt.Sprintf("https://a.example/post/%d", i)
			require.NoError(t, svc.UpsertDocument(ctx, testDoc(url, fmt.Sprintf("Post %d", i), daysAgo)))
		}

		docs, err := svc.RecentDocuments(ctx, nil, 90)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.True(t, docs[0].PublishedAt.After(docs[1].PublishedAt))
		assert.True(t, docs[1].PublishedAt.After(docs[2].PublishedAt))
	})

	t.Run("empty keyword strings are ignored", func(t *testing.T) {
		t.Parallel()

		svc := newTestCorpus(t)
		ctx := context.Background()

		require.NoError(t, svc.UpsertDocument(ctx, testDoc("https://a.example/1", "Anything", 5)))

		docs, err := svc.RecentDocuments(ctx, []string{"", "  "}, 90)
		require.NoError(t, err)
		require.Len(t, docs, 1)
	})
}

// Dedup invariant end to end: same pair twice stores one document, a second
// title for the same URL stores two.
func TestCorpusService_DedupInvariant(t *testing.T) {
	t.Parallel()

	svc := newTestCorpus(t)
	ctx := context.Background()

	ingest := func(url, title string) {
		exists, err := svc.ExistsByDedupKey(ctx, url, title)
		require.NoError(t, err)
		if exists {
			return
		}
		require.NoError(t, svc.UpsertDocument(ctx, testDoc(url, title, 1)))
	}

	ingest("https://a.example/p", "Title one")
	ingest("https://a.example/p", "Title one")

	docs, err := svc.RecentDocuments(ctx, nil, 30)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	// Soft duplicate: same URL, different title coexists with the original.
	ingest("https://a.example/p", "Title two")

	docs, err = svc.RecentDocuments(ctx, nil, 30)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}
