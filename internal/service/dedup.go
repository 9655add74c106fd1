// Package service holds business logic that sits between the UI and
// the repositories.
package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/agnivade/levenshtein"

	"marginalia/internal/database/repository"
)

// Deduper implements duplicate detection for the reading list.
type Deduper struct {
	Articles *repository.ArticleRepo
}

// Match describes an existing article a candidate collides with.
type Match struct {
	Article repository.Article
	// Exact is true when the URLs normalize to the same address;
	// false means a fuzzy title match.
	Exact bool
}

// Check runs the 2-stage algorithm against the saved articles:
// stage 1 compares normalized URLs, stage 2 compares titles by edit
// distance. A nil result means no collision.
func (d *Deduper) Check(ctx context.Context, rawURL, title string) (*Match, error) {
	// Stage1 exact URL
	existing, err := d.Articles.ByURL(ctx, NormalizeURL(rawURL))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Match{Article: *existing, Exact: true}, nil
	}

	// Stage2 fuzzy title
	if strings.TrimSpace(title) == "" {
		return nil, nil
	}
	titles, err := d.Articles.Titles(ctx)
	if err != nil {
		return nil, err
	}
	for id, existingTitle := range titles {
		if !titlesSimilar(title, existingTitle) {
			continue
		}
		a, err := d.Articles.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}
		return &Match{Article: *a}, nil
	}
	return nil, nil
}

// NormalizeURL strips the parts of an address that do not change what
// page it points at: scheme case, www prefix, trailing slash, fragment
// and common tracking parameters.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	q := u.Query()
	for key := range q {
		if strings.HasPrefix(key, "utm_") || key == "fbclid" || key == "gclid" {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func titlesSimilar(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxlen := len(a)
	if len(b) > maxlen {
		maxlen = len(b)
	}
	return float64(dist)/float64(maxlen) < 0.2
}
