package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"tab:library"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:library") {
		t.Fatalf("expected ctrl+k in tab:library")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:archive") {
		t.Fatalf("did not expect ctrl+k in tab:archive")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "tab:archive") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryEmptyScopesMatchEverywhere(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"x"}, Action: "anywhere"},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, "anywhere", "screen:detail") {
		t.Fatalf("binding without scopes should match any scope")
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"a"}, Action: "add", Scopes: []string{"tab:library"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "close", Scopes: []string{"screen:detail"}},
	})
	got := reg.BindingsForScope("tab:library")
	if len(got) != 2 {
		t.Fatalf("expected 2 bindings for tab:library, got %d", len(got))
	}
	if got[0].Action != "add" || got[1].Action != "quit" {
		t.Fatalf("registration order not preserved: %+v", got)
	}
}
