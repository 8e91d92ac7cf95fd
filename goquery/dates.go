package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// dateSelectors are the places pages declare a publication date, in
// preference order.
var dateSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property="article:published_time"]`, "content"},
	{`meta[name="date"]`, "content"},
	{`time`, "datetime"},
	{`time`, ""},
}

// MetaDate scans HTML for a declared publication date and parses it
// leniently. The bool result is false when no parseable date is found;
// the caller decides the fallback.
func MetaDate(html string) (time.Time, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return time.Time{}, false
	}

	for _, ds := range dateSelectors {
		sel := doc.Find(ds.selector).First()
		if sel.Length() == 0 {
			continue
		}

		var raw string
		if ds.attr == "" {
			raw = sel.Text()
		} else {
			raw, _ = sel.Attr(ds.attr)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if t, err := dateparse.ParseAny(raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
