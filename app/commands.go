package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"marginalia/core"
	"marginalia/core/screens"
	"marginalia/internal/config"
	"marginalia/internal/database/repository"
	"marginalia/tabs"
)

func RegisterCommands(reg *core.CommandRegistry, deps Deps) {
	reg.Register(core.Command{
		ID:          "switch-library",
		Name:        "Switch to library",
		Description: "Activate library tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.TabSwitchMsg{Index: 0} }
		},
	})
	reg.Register(core.Command{
		ID:          "switch-archive",
		Name:        "Switch to archive",
		Description: "Activate archive tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.TabSwitchMsg{Index: 1} }
		},
	})
	reg.Register(core.Command{
		ID:          "switch-settings",
		Name:        "Switch to settings",
		Description: "Activate settings tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.TabSwitchMsg{Index: 2} }
		},
	})

	reg.Register(core.Command{
		ID:          "open-detail",
		Name:        "Open article",
		Description: "Show the selected article's details",
		Scopes:      []string{"tab:library", "tab:archive"},
		Disabled:    requireSelection,
		Execute: func(m *core.Model) tea.Cmd {
			a := selectedArticle(m)
			if a == nil {
				return core.StatusCmd("No article selected")
			}
			id := a.ID
			fallback := *a
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
				defer cancel()
				// re-read to pick up tags, the list rows do not carry them
				full, err := deps.Articles.Get(ctx, id)
				if err != nil || full == nil {
					full = &fallback
				}
				return core.PresentModalMsg{Screen: newArticleDetailModal(*full, deps.Config.UI.DateFormat)}
			}
		},
	})

	reg.Register(core.Command{
		ID:          "add-article",
		Name:        "Add article",
		Description: "Save a URL to the reading list",
		Scopes:      []string{"tab:library", "tab:archive"},
		Execute: func(m *core.Model) tea.Cmd {
			m.PushScreen(newAddArticleModal(deps))
			return nil
		},
	})

	reg.Register(core.Command{
		ID:          "toggle-archive",
		Name:        "Archive / unarchive",
		Description: "Move the selected article in or out of the archive",
		Scopes:      []string{"tab:library", "tab:archive"},
		Disabled:    requireSelection,
		Execute: func(m *core.Model) tea.Cmd {
			a := selectedArticle(m)
			if a == nil {
				return core.StatusCmd("No article selected")
			}
			next := repository.StatusArchived
			if a.Status == repository.StatusArchived {
				next = repository.StatusUnread
			}
			id := a.ID
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
				defer cancel()
				if err := deps.Articles.SetStatus(ctx, id, next); err != nil {
					return core.StatusMsg{Text: "Archive failed: " + err.Error(), IsErr: true}
				}
				return tabs.ReloadMsg{}
			}
		},
	})

	reg.Register(core.Command{
		ID:          "refresh-metadata",
		Name:        "Refresh metadata",
		Description: "Re-fetch title, summary and site name",
		Scopes:      []string{"tab:library", "tab:archive"},
		Disabled:    requireSelection,
		Execute: func(m *core.Model) tea.Cmd {
			a := selectedArticle(m)
			if a == nil {
				return core.StatusCmd("No article selected")
			}
			id, url := a.ID, a.URL
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
				defer cancel()
				meta, err := deps.Fetcher.Collect(ctx, url)
				if err != nil {
					return core.StatusMsg{Text: "Fetch failed: " + err.Error(), IsErr: true}
				}
				if err := deps.Articles.UpdateMetadata(ctx, id, meta.Title, meta.SiteName, meta.Summary); err != nil {
					return core.StatusMsg{Text: "Update failed: " + err.Error(), IsErr: true}
				}
				return tabs.ReloadMsg{}
			}
		},
	})

	reg.Register(core.Command{
		ID:          "edit-notes",
		Name:        "Edit notes",
		Description: "Edit your notes on the selected article",
		Scopes:      []string{"tab:library", "tab:archive"},
		Disabled:    requireSelection,
		Execute: func(m *core.Model) tea.Cmd {
			a := selectedArticle(m)
			if a == nil {
				return core.StatusCmd("No article selected")
			}
			m.PushScreen(newNotesModal(deps, *a))
			return nil
		},
	})

	reg.Register(core.Command{
		ID:          "edit-tags",
		Name:        "Edit tags",
		Description: "Change the selected article's tags",
		Scopes:      []string{"tab:library", "tab:archive"},
		Disabled:    requireSelection,
		Execute: func(m *core.Model) tea.Cmd {
			a := selectedArticle(m)
			if a == nil {
				return core.StatusCmd("No article selected")
			}
			id := a.ID
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
				defer cancel()
				// re-read to get tags, the list rows do not carry them
				full, err := deps.Articles.Get(ctx, id)
				if err != nil || full == nil {
					return core.StatusMsg{Text: "Article unavailable", IsErr: true}
				}
				return core.PushScreenMsg{Screen: newEditTagsModal(deps, *full)}
			}
		},
	})

	reg.Register(core.Command{
		ID:          "delete-article",
		Name:        "Delete article",
		Description: "Remove the selected article permanently",
		Scopes:      []string{"tab:library", "tab:archive"},
		Disabled:    requireSelection,
		Execute: func(m *core.Model) tea.Cmd {
			a := selectedArticle(m)
			if a == nil {
				return core.StatusCmd("No article selected")
			}
			id := a.ID
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
				defer cancel()
				if err := deps.Articles.Delete(ctx, id); err != nil {
					return core.StatusMsg{Text: "Delete failed: " + err.Error(), IsErr: true}
				}
				return tabs.ReloadMsg{}
			}
		},
	})

	reg.Register(core.Command{
		ID:          "filter-by-tag",
		Name:        "Filter by tag",
		Description: "Show only articles with one tag",
		Scopes:      []string{"tab:library"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), deps.fetchTimeout())
				defer cancel()
				all, err := deps.Tags.List(ctx)
				if err != nil {
					return core.StatusMsg{Text: "Tags unavailable: " + err.Error(), IsErr: true}
				}
				options := make([]screens.PickerOption, 0, len(all)+1)
				options = append(options, screens.PickerOption{ID: "", Label: "(all articles)"})
				for _, t := range all {
					options = append(options, screens.PickerOption{ID: t.Name, Label: "#" + t.Name})
				}
				return core.PushScreenMsg{Screen: screens.NewPickerModal(
					"Filter by tag", "screen:picker", options,
					func(opt screens.PickerOption) tea.Msg {
						return tabs.FilterTagMsg{Name: opt.ID}
					},
				)}
			}
		},
	})

	reg.Register(core.Command{
		ID:          "toggle-exit-transition",
		Name:        "Toggle close animation",
		Description: "Turn the modal exit transition on or off",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			frames := core.DefaultExitFrames
			if m.ExitFrames() > 0 {
				frames = 0
			}
			m.SetExitFrames(frames)
			// re-read before writing so keys edited on disk since startup survive
			cfg, err := config.Load()
			if err != nil {
				slog.Warn("reload config failed", "err", err)
				cfg = deps.Config
			}
			cfg.UI.ExitFrames = frames
			if err := config.Save(cfg); err != nil {
				slog.Warn("persist config failed", "err", err)
			}
			if frames == 0 {
				return core.StatusCmd("Close animation off")
			}
			return core.StatusCmd("Close animation on")
		},
	})
}
