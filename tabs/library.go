package tabs

import (
	"context"

	"marginalia/core"
	"marginalia/internal/database/repository"
)

// LibraryTab lists unread and in-progress articles, newest first.
type LibraryTab struct {
	listTab
}

func NewLibraryTab(articles *repository.ArticleRepo, dateFormat string) *LibraryTab {
	t := &LibraryTab{}
	t.listTab = listTab{
		id:         "library",
		title:      "Library",
		scope:      "tab:library",
		jump:       'l',
		dateFormat: dateFormat,
		emptyText:  "Nothing saved yet. Press 'a' to add an article.",
		query: func(ctx context.Context) ([]repository.Article, error) {
			if t.filterTag != "" {
				return articles.ListByTag(ctx, t.filterTag)
			}
			return articles.ListActive(ctx)
		},
		onLoaded: func(m *core.Model, count int) {
			m.Data.Unread = count
		},
	}
	return t
}
