package tabs

import (
	"context"

	"marginalia/core"
	"marginalia/internal/database/repository"
)

// ArchiveTab lists finished articles, newest first.
type ArchiveTab struct {
	listTab
}

func NewArchiveTab(articles *repository.ArticleRepo, dateFormat string) *ArchiveTab {
	t := &ArchiveTab{}
	t.listTab = listTab{
		id:         "archive",
		title:      "Archive",
		scope:      "tab:archive",
		jump:       'a',
		dateFormat: dateFormat,
		emptyText:  "No archived articles. Press 'e' in the library to archive one.",
		query: func(ctx context.Context) ([]repository.Article, error) {
			return articles.ListByStatus(ctx, repository.StatusArchived)
		},
		onLoaded: func(m *core.Model, count int) {
			m.Data.Archived = count
		},
	}
	return t
}
