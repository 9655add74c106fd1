// Package metadata fetches page metadata for saved articles.
package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// maxBodyBytes caps how much HTML we parse per page.
const maxBodyBytes = 2 * 1024 * 1024

// PageMeta holds the metadata extracted from an article page.
type PageMeta struct {
	Title    string
	Summary  string
	SiteName string
}

// Fetcher collects page metadata over HTTP.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Collect fetches the page at rawURL and extracts its metadata.
// Open Graph tags take priority, with <title> and meta description
// as fallbacks. Missing fields come back empty rather than as errors.
func (f *Fetcher) Collect(ctx context.Context, rawURL string) (*PageMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := &PageMeta{}

	if title, exists := doc.Find(`meta[property="og:title"]`).Attr("content"); exists {
		meta.Title = strings.TrimSpace(title)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if desc, exists := doc.Find(`meta[property="og:description"]`).Attr("content"); exists {
		meta.Summary = strings.TrimSpace(desc)
	}
	if meta.Summary == "" {
		if desc, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
			meta.Summary = strings.TrimSpace(desc)
		}
	}

	if site, exists := doc.Find(`meta[property="og:site_name"]`).Attr("content"); exists {
		meta.SiteName = strings.TrimSpace(site)
	}
	if meta.SiteName == "" {
		meta.SiteName = hostOf(rawURL)
	}

	return meta, nil
}

// hostOf extracts the hostname, without any www prefix, for use as a
// site name when the page declares none.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
