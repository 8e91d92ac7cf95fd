package agent

import (
	"github.com/avoronin/trendscout"
)

// dateLayout is the calendar-date format used everywhere in the pipeline.
const dateLayout = "2006-01-02"

// Snippet is one retrieved document trimmed for the generation prompt.
type Snippet struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Text  string `json:"text"`
}

// Domain returns the source host of the snippet.
func (s Snippet) Domain() string {
	return trendscout.Host(s.URL)
}

// buildSnippets converts retrieved documents into prompt snippets: body
// text truncated to maxChars with an ellipsis marker, at most max entries.
func buildSnippets(docs []*trendscout.Document, max, maxChars int) []Snippet {
	if len(docs) > max {
		docs = docs[:max]
	}
	snippets := make([]Snippet, 0, len(docs))
	for _, doc := range docs {
		text := doc.Text
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars]) + "..."
		}
		snippets = append(snippets, Snippet{
			URL:   doc.URL,
			Title: doc.Title,
			Date:  doc.PublishedAt.Format(dateLayout),
			Text:  text,
		})
	}
	return snippets
}
