// Package app wires repositories, services and screens into the core model.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marginalia/core"
	"marginalia/core/screens"
	"marginalia/internal/config"
	"marginalia/internal/database/repository"
	"marginalia/internal/metadata"
	"marginalia/internal/service"
	"marginalia/tabs"
)

// Deps bundles everything the UI layer needs.
type Deps struct {
	Config   config.Config
	Articles *repository.ArticleRepo
	Tags     *repository.TagRepo
	Fetcher  *metadata.Fetcher
	Deduper  *service.Deduper
}

func (d Deps) fetchTimeout() time.Duration {
	return time.Duration(d.Config.Fetch.TimeoutSecs) * time.Second
}

func Tabs(deps Deps) []core.Tab {
	return []core.Tab{
		tabs.NewLibraryTab(deps.Articles, deps.Config.UI.DateFormat),
		tabs.NewArchiveTab(deps.Articles, deps.Config.UI.DateFormat),
		tabs.NewSettingsTab(tabs.SettingsInfo{
			ConfigPath:   config.Path(),
			DatabasePath: deps.Config.Database.Path,
			LogPath:      deps.Config.Log.Path,
			DateFormat:   deps.Config.UI.DateFormat,
			FetchTimeout: fmt.Sprintf("%ds", deps.Config.Fetch.TimeoutSecs),
			UserAgent:    deps.Config.Fetch.UserAgent,
		}),
	}
}

func ConfigureModel(m *core.Model, deps Deps) {
	if m == nil {
		return
	}
	m.SetExitFrames(deps.Config.UI.ExitFrames)

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandModal(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	RegisterCommands(m.CommandRegistry(), deps)
}

// articleSelector is what list tabs expose to palette commands.
type articleSelector interface {
	SelectedArticle() *repository.Article
}

func selectedArticle(m *core.Model) *repository.Article {
	sel, ok := m.ActiveTab().(articleSelector)
	if !ok {
		return nil
	}
	return sel.SelectedArticle()
}

func requireSelection(m *core.Model) (bool, string) {
	if selectedArticle(m) == nil {
		return true, "No article selected"
	}
	return false, ""
}
