// Package goquery provides HTML metadata helpers for ingestion: adjacent
// link collection from landing pages and publication date scanning.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/avoronin/trendscout"
)

// Ensure LinkCollector implements trendscout.LinkCollector at compile time.
var _ trendscout.LinkCollector = (*LinkCollector)(nil)

// LinkCollector gathers same-host article links from a landing page.
type LinkCollector struct {
	fetcher trendscout.Fetcher
}

// NewLinkCollector creates a LinkCollector using the given fetcher.
func NewLinkCollector(fetcher trendscout.Fetcher) *LinkCollector {
	return &LinkCollector{fetcher: fetcher}
}

// CollectLinks fetches the landing page and returns up to max same-host
// links, order-preserving deduplicated. Query strings and fragments are
// stripped so near-identical URLs collapse.
func (c *LinkCollector) CollectLinks(ctx context.Context, landingURL string, max int) ([]string, error) {
	html, err := c.fetcher.Fetch(ctx, landingURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(landingURL)
	if err != nil {
		return nil, trendscout.Errorf(trendscout.EINVALID, "invalid landing URL %q", landingURL)
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		link, ok := normalizeLink(base, href)
		if !ok {
			return true
		}
		if _, dup := seen[link]; dup {
			return true
		}
		seen[link] = struct{}{}
		links = append(links, link)
		return len(links) < max
	})

	return links, nil
}

// normalizeLink resolves href against base and returns it if it is a
// same-host http(s) link worth crawling.
func normalizeLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	u, err := base.Parse(href)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host != base.Host {
		return "", false
	}

	u.Fragment = ""
	u.RawQuery = ""
	return u.String(), true
}
