package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"marginalia/core"
	"marginalia/core/screens"
	"marginalia/internal/database/repository"
	"marginalia/tabs"
)

func newEditTagsModal(deps Deps, a repository.Article) core.Screen {
	title := a.Title
	if title == "" {
		title = a.URL
	}
	current := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		current = append(current, t.Name)
	}
	return screens.NewEditorScreen(
		"Tags: "+title,
		"screen:editor",
		[]screens.EditorField{
			{Key: "tags", Label: "Tags (comma separated)", Value: strings.Join(current, ", ")},
		},
		func(values map[string]string) tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
			defer cancel()
			if err := reconcileTags(ctx, deps, a, parseTagNames(values["tags"])); err != nil {
				return core.StatusMsg{Text: "Tag update failed: " + err.Error(), IsErr: true}
			}
			return tabs.ReloadMsg{}
		},
	)
}

// reconcileTags attaches the named tags that are missing and detaches the
// ones no longer wanted.
func reconcileTags(ctx context.Context, deps Deps, a repository.Article, want []string) error {
	wanted := make(map[string]bool, len(want))
	for _, name := range want {
		wanted[name] = true
	}
	existing := make(map[string]string, len(a.Tags))
	for _, t := range a.Tags {
		existing[t.Name] = t.ID
	}

	for name := range wanted {
		if _, ok := existing[name]; ok {
			continue
		}
		tag, err := deps.Tags.ByName(ctx, name)
		if err != nil {
			return err
		}
		if tag == nil {
			tag = &repository.Tag{ID: uuid.NewString(), Name: name}
			if err := deps.Tags.Upsert(ctx, *tag); err != nil {
				return err
			}
		}
		if err := deps.Tags.Attach(ctx, a.ID, tag.ID); err != nil {
			return err
		}
	}
	for name, id := range existing {
		if wanted[name] {
			continue
		}
		if err := deps.Tags.Detach(ctx, a.ID, id); err != nil {
			return err
		}
	}
	return nil
}
