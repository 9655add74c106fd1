package app

import (
	"strings"

	"marginalia/core"
	"marginalia/core/screens"
	"marginalia/internal/database/repository"
)

// newArticleDetailModal builds the read-only detail view shown through the
// model's presentation slot. It copies the article into the screen, so the
// rendered content survives the exit transition after dismissal.
func newArticleDetailModal(a repository.Article, dateFormat string) core.Screen {
	title := a.Title
	if title == "" {
		title = a.URL
	}

	rows := []screens.DetailRow{
		{Label: "URL", Value: a.URL},
		{Label: "Site", Value: a.SiteName},
		{Label: "Status", Value: a.Status},
		{Label: "Added", Value: a.AddedAt.Format(dateFormat)},
	}
	if a.ReadAt != nil {
		rows = append(rows, screens.DetailRow{Label: "Read", Value: a.ReadAt.Format(dateFormat)})
	}
	if len(a.Tags) > 0 {
		names := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			names = append(names, t.Name)
		}
		rows = append(rows, screens.DetailRow{Label: "Tags", Value: strings.Join(names, ", ")})
	}

	body := a.Summary
	if a.Notes != "" {
		if body != "" {
			body += "\n\n"
		}
		body += "Notes: " + a.Notes
	}

	return screens.NewDetailScreen(title, "screen:detail", rows, body)
}
