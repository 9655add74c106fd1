package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"marginalia/core"
	"marginalia/core/screens"
	"marginalia/internal/database/repository"
	"marginalia/tabs"
)

func newNotesModal(deps Deps, a repository.Article) core.Screen {
	title := a.Title
	if title == "" {
		title = a.URL
	}
	return screens.NewEditorScreen(
		"Notes: "+title,
		"screen:editor",
		[]screens.EditorField{
			{Key: "notes", Label: "Notes", Value: a.Notes},
		},
		func(values map[string]string) tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
			defer cancel()
			if err := deps.Articles.UpdateNotes(ctx, a.ID, values["notes"]); err != nil {
				return core.StatusMsg{Text: "Notes save failed: " + err.Error(), IsErr: true}
			}
			return tabs.ReloadMsg{}
		},
	)
}
