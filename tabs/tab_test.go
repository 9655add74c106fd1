package tabs

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marginalia/core"
	"marginalia/internal/database/repository"
)

func testModel(t *testing.T, tab core.Tab) *core.Model {
	t.Helper()
	m := core.NewModel(
		[]core.Tab{tab},
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		core.AppData{},
	)
	return &m
}

func sampleArticles(n int) []repository.Article {
	out := make([]repository.Article, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, repository.Article{
			ID:      string(rune('a' + i)),
			URL:     "https://example.com/" + string(rune('a'+i)),
			Title:   "Article " + string(rune('A'+i)),
			Status:  repository.StatusUnread,
			AddedAt: time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestDataLoadedUpdatesListAndCounts(t *testing.T) {
	tab := NewLibraryTab(nil, "2006-01-02")
	m := testModel(t, tab)

	tab.Update(m, core.DataLoadedMsg{Key: "library", Data: sampleArticles(3)})
	if tab.list.Len() != 3 {
		t.Fatalf("list len = %d, want 3", tab.list.Len())
	}
	if m.Data.Unread != 3 {
		t.Fatalf("unread count = %d, want 3", m.Data.Unread)
	}
}

func TestDataLoadedIgnoresOtherKeys(t *testing.T) {
	tab := NewLibraryTab(nil, "2006-01-02")
	m := testModel(t, tab)

	tab.Update(m, core.DataLoadedMsg{Key: "archive", Data: sampleArticles(2)})
	if tab.list.Len() != 0 {
		t.Fatalf("library must ignore archive payloads")
	}
}

func TestRowNavigationClamps(t *testing.T) {
	tab := NewLibraryTab(nil, "2006-01-02")
	m := testModel(t, tab)
	tab.Update(m, core.DataLoadedMsg{Key: "library", Data: sampleArticles(2)})

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	tab.Update(m, down)
	tab.Update(m, down)
	tab.Update(m, down)
	if got := tab.SelectedArticle(); got == nil || got.ID != "b" {
		t.Fatalf("cursor should clamp at last row, got %+v", got)
	}
	tab.Update(m, up)
	tab.Update(m, up)
	tab.Update(m, up)
	if got := tab.SelectedArticle(); got == nil || got.ID != "a" {
		t.Fatalf("cursor should clamp at first row, got %+v", got)
	}
}

func TestCursorSurvivesShrinkingReload(t *testing.T) {
	tab := NewLibraryTab(nil, "2006-01-02")
	m := testModel(t, tab)
	tab.Update(m, core.DataLoadedMsg{Key: "library", Data: sampleArticles(3)})

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	tab.Update(m, down)
	tab.Update(m, down)

	tab.Update(m, core.DataLoadedMsg{Key: "library", Data: sampleArticles(1)})
	if got := tab.SelectedArticle(); got == nil || got.ID != "a" {
		t.Fatalf("cursor should clamp after shrink, got %+v", got)
	}
}

func TestActionKeysRouteToCommands(t *testing.T) {
	tab := NewLibraryTab(nil, "2006-01-02")
	m := testModel(t, tab)
	tab.Update(m, core.DataLoadedMsg{Key: "library", Data: sampleArticles(1)})

	cases := []struct {
		key  rune
		want string
	}{
		{'a', "add-article"},
		{'e', "toggle-archive"},
		{'r', "refresh-metadata"},
	}
	for _, c := range cases {
		cmd := tab.Update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c.key}})
		if cmd == nil {
			t.Fatalf("key %q should produce a command", c.key)
		}
		msg, ok := cmd().(core.CommandExecuteMsg)
		if !ok || msg.CommandID != c.want {
			t.Fatalf("key %q routed to %+v, want %s", c.key, msg, c.want)
		}
	}

	cmd := tab.Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter should produce a command")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "open-detail" {
		t.Fatalf("enter routed to %+v, want open-detail", msg)
	}
}

func TestViewShowsTitlesAndEmptyState(t *testing.T) {
	tab := NewLibraryTab(nil, "2006-01-02")
	m := testModel(t, tab)

	if view := tab.View(m, 60, 10); !strings.Contains(view, "Nothing saved yet") {
		t.Fatalf("empty library should show hint, got:\n%s", view)
	}

	tab.Update(m, core.DataLoadedMsg{Key: "library", Data: sampleArticles(2)})
	view := tab.View(m, 60, 10)
	if !strings.Contains(view, "Article A") || !strings.Contains(view, "Article B") {
		t.Fatalf("view should list loaded articles, got:\n%s", view)
	}
	if !strings.Contains(view, "Library (2)") {
		t.Fatalf("pane title should show count, got:\n%s", view)
	}
}

func TestSettingsViewShowsPaths(t *testing.T) {
	tab := NewSettingsTab(SettingsInfo{
		ConfigPath:   "/home/me/.config/marginalia/config.toml",
		DatabasePath: "/home/me/.local/share/marginalia/articles.db",
		LogPath:      "/home/me/.local/share/marginalia/marginalia.log",
		DateFormat:   "2006-01-02",
		FetchTimeout: "10s",
		UserAgent:    "marginalia/1.0",
	})
	m := testModel(t, tab)
	view := tab.View(m, 80, 20)
	if !strings.Contains(view, "articles.db") || !strings.Contains(view, "config.toml") {
		t.Fatalf("settings view should show resolved paths, got:\n%s", view)
	}
}

func TestSettingsViewTracksExitFrames(t *testing.T) {
	tab := NewSettingsTab(SettingsInfo{DateFormat: "2006-01-02"})
	m := testModel(t, tab)

	m.SetExitFrames(6)
	if view := tab.View(m, 80, 20); !strings.Contains(view, "Exit frames    6") {
		t.Fatalf("settings should show current exit frames, got:\n%s", view)
	}
	m.SetExitFrames(0)
	if view := tab.View(m, 80, 20); !strings.Contains(view, "Exit frames    0") {
		t.Fatalf("settings should follow a toggled value, got:\n%s", view)
	}
}
