package app

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"marginalia/core"
	"marginalia/core/screens"
	"marginalia/internal/database/repository"
	"marginalia/internal/service"
	"marginalia/tabs"
)

// newAddArticleModal builds the save-a-URL form. Submit runs as a command:
// it normalizes the URL, checks for duplicates, fetches page metadata and
// inserts the article, so the UI never blocks on the network.
func newAddArticleModal(deps Deps) core.Screen {
	return screens.NewEditorScreen(
		"Add Article",
		"screen:editor",
		[]screens.EditorField{
			{Key: "url", Label: "URL"},
			{Key: "title", Label: "Title (blank = fetch)"},
			{Key: "tags", Label: "Tags (comma separated)"},
		},
		func(values map[string]string) tea.Msg {
			raw := strings.TrimSpace(values["url"])
			if raw == "" {
				return core.StatusMsg{Text: "URL is required", IsErr: true}
			}
			if u, err := url.Parse(raw); err != nil || u.Host == "" {
				return core.StatusMsg{Text: "Not a valid URL: " + raw, IsErr: true}
			}
			return saveArticle(deps, raw, values["title"], values["tags"])
		},
	)
}

func saveArticle(deps Deps, rawURL, titleOverride, rawTags string) tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
	defer cancel()

	normalized := service.NormalizeURL(rawURL)
	title := strings.TrimSpace(titleOverride)

	match, err := deps.Deduper.Check(ctx, normalized, title)
	if err != nil {
		return core.StatusMsg{Text: "Duplicate check failed: " + err.Error(), IsErr: true}
	}
	if match != nil && match.Exact {
		return core.StatusMsg{Text: "Already saved: " + match.Article.Title, IsErr: true}
	}

	article := repository.Article{
		ID:     uuid.NewString(),
		URL:    normalized,
		Title:  title,
		Status: repository.StatusUnread,
	}

	meta, err := deps.Fetcher.Collect(ctx, normalized)
	if err != nil {
		// the article is still worth keeping without metadata
		slog.Warn("metadata fetch failed", "url", normalized, "err", err)
	} else {
		if article.Title == "" {
			article.Title = meta.Title
		}
		article.SiteName = meta.SiteName
		article.Summary = meta.Summary
	}

	// a fuzzy title collision might be a repost, re-check now that the
	// fetched title is known
	if match == nil && article.Title != title {
		match, err = deps.Deduper.Check(ctx, normalized, article.Title)
		if err != nil {
			return core.StatusMsg{Text: "Duplicate check failed: " + err.Error(), IsErr: true}
		}
	}
	if match != nil {
		slog.Warn("similar article already saved", "title", article.Title, "existing", match.Article.Title)
	}

	if err := deps.Articles.InsertWithTags(ctx, article, parseTagNames(rawTags)); err != nil {
		return core.StatusMsg{Text: "Save failed: " + err.Error(), IsErr: true}
	}
	return tabs.ReloadMsg{}
}

func parseTagNames(raw string) []string {
	var out []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
