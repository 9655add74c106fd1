package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:library"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:archive"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, AppData{})
	resA := reg.Search("", "tab:library", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:library, got %+v", resA)
	}
	resB := reg.Search("", "tab:archive", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:archive, got %+v", resB)
	}
}

func TestSearchOrdersEnabledFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "z", Name: "Zeta", Disabled: func(m *Model) (bool, string) { return true, "" }},
		{ID: "a", Name: "Alpha"},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, AppData{})
	res := reg.Search("", "tab:library", &m)
	if len(res) != 2 || res[0].CommandID != "a" || res[1].CommandID != "z" {
		t.Fatalf("expected enabled command first, got %+v", res)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	executed := false
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(m *Model) (bool, string) { return true, "not now" },
			Execute: func(m *Model) tea.Cmd { executed = true; return nil }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, AppData{})

	cmd := reg.Execute("missing", &m)
	if cmd == nil {
		t.Fatalf("unknown command should report via status")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "Unknown command: missing" {
		t.Fatalf("unexpected status for unknown command: %#v", cmd())
	}

	cmd = reg.Execute("off", &m)
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "not now" {
		t.Fatalf("disabled command should surface its reason, got %#v", cmd())
	}
	if executed {
		t.Fatalf("disabled command must not run")
	}
}
