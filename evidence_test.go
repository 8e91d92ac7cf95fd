package trendscout_test

import (
	"testing"

	"github.com/avoronin/trendscout"
	"github.com/stretchr/testify/assert"
)

func docsFrom(urls ...string) []*trendscout.Document {
	docs := make([]*trendscout.Document, 0, len(urls))
	for _, u := range urls {
		docs = append(docs, &trendscout.Document{URL: u})
	}
	return docs
}

func TestEvidencePolicy_Sufficient(t *testing.T) {
	t.Parallel()

	t.Run("zero items is always insufficient", func(t *testing.T) {
		t.Parallel()

		ok, domains := trendscout.EvidencePolicy{}.Sufficient(nil)
		assert.False(t, ok)
		assert.Empty(t, domains)

		ok, _ = trendscout.EvidencePolicy{Relaxed: true}.Sufficient(nil)
		assert.False(t, ok)
	})

	t.Run("one domain is insufficient however many items", func(t *testing.T) {
		t.Parallel()

		ok, domains := trendscout.EvidencePolicy{}.Sufficient(docsFrom(
			"https://example.com/1",
			"https://example.com/2",
			"https://example.com/3",
		))
		assert.False(t, ok)
		assert.Equal(t, []string{"example.com"}, domains)
	})

	t.Run("two distinct domains are sufficient", func(t *testing.T) {
		t.Parallel()

		ok, domains := trendscout.EvidencePolicy{}.Sufficient(docsFrom(
			"https://a.example/1",
			"https://b.example/2",
		))
		assert.True(t, ok)
		assert.Equal(t, []string{"a.example", "b.example"}, domains)
	})

	t.Run("adding a repeat domain never flips true to false", func(t *testing.T) {
		t.Parallel()

		base := docsFrom("https://a.example/1", "https://b.example/2")
		ok, _ := trendscout.EvidencePolicy{}.Sufficient(base)
		assert.True(t, ok)

		ok, _ = trendscout.EvidencePolicy{}.Sufficient(append(base, docsFrom("https://a.example/3")...))
		assert.True(t, ok)
	})

	t.Run("duplicate domains count once", func(t *testing.T) {
		t.Parallel()

		_, domains := trendscout.EvidencePolicy{}.Sufficient(docsFrom(
			"https://a.example/1",
			"https://a.example/2",
			"https://b.example/3",
		))
		assert.Equal(t, []string{"a.example", "b.example"}, domains)
	})

	t.Run("subdomains are independent sources", func(t *testing.T) {
		t.Parallel()

		ok, domains := trendscout.EvidencePolicy{}.Sufficient(docsFrom(
			"https://news.example.com/1",
			"https://blog.example.com/2",
		))
		assert.True(t, ok)
		assert.Equal(t, []string{"blog.example.com", "news.example.com"}, domains)
	})

	t.Run("relaxed mode counts items", func(t *testing.T) {
		t.Parallel()

		items := docsFrom("https://example.com/1", "https://example.com/2")

		ok, _ := trendscout.EvidencePolicy{}.Sufficient(items)
		assert.False(t, ok)

		ok, _ = trendscout.EvidencePolicy{Relaxed: true}.Sufficient(items)
		assert.True(t, ok)
	})
}
