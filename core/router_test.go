package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type routerTab struct{ hits int }

func (t *routerTab) ID() string    { return "r" }
func (t *routerTab) Title() string { return "Router" }
func (t *routerTab) Scope() string { return "tab:r" }
func (t *routerTab) JumpKey() byte { return 'r' }
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}
func (t *routerTab) View(m *Model, width, height int) string { return "tab body" }

type fakeScreen struct {
	hits    int
	content string
}

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return s.content }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func newRouterModel(tab Tab) Model {
	return NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil), AppData{})
}

func TestStackedScreenGetsKeyBeforeTab(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key when screen open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestStackedScreenCanPopItself(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

func TestModalReceivesKeysWhileActive(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	screen := &fakeScreen{content: "detail"}
	m.PresentModal(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("active modal should handle keys")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key while modal is up")
	}
	if !updated.ModalActive() {
		t.Fatalf("modal should still be active")
	}
}

func TestModalDismissStartsExitTransition(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.PresentModal(&fakeScreen{content: "detail"})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.ModalActive() {
		t.Fatalf("esc should dismiss the modal")
	}
	if !updated.ModalVisible() {
		t.Fatalf("dismissed modal should stay visible through the transition")
	}
	if cmd == nil {
		t.Fatalf("dismissal should schedule the first exit tick")
	}
	if screen, ok := updated.ModalScreen(); !ok || screen.View(0, 0) != "detail" {
		t.Fatalf("retained screen must stay renderable after dismissal")
	}
}

func TestModalKeysGoToTabDuringExitTransition(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.PresentModal(&fakeScreen{content: "detail"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)

	// 'x' is bound to nothing, so it should fall through to the tab now
	next, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated = next.(Model)
	if tab.hits != 1 {
		t.Fatalf("closing modal must not swallow keys, tab hits = %d", tab.hits)
	}
}

func TestModalExitTicksCountDown(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.SetExitFrames(2)
	m.PresentModal(&fakeScreen{content: "detail"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)

	next, cmd := updated.Update(ModalExitTickMsg{Gen: updated.exitGen})
	updated = next.(Model)
	if !updated.ModalVisible() || cmd == nil {
		t.Fatalf("one tick left: overlay should persist and reschedule")
	}
	next, cmd = updated.Update(ModalExitTickMsg{Gen: updated.exitGen})
	updated = next.(Model)
	if updated.ModalVisible() {
		t.Fatalf("transition finished: overlay should be gone")
	}
	if cmd != nil {
		t.Fatalf("no further ticks after the countdown ends")
	}
	// the data outlives the visibility: controller invariant
	if screen, ok := updated.ModalScreen(); !ok || screen.View(0, 0) != "detail" {
		t.Fatalf("retained screen should survive the whole transition")
	}
}

func TestRepresentDuringExitTransition(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.PresentModal(&fakeScreen{content: "first"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)

	updated.PresentModal(&fakeScreen{content: "second"})
	if !updated.ModalActive() {
		t.Fatalf("presenting mid-transition should activate the modal")
	}
	next, cmd := updated.Update(ModalExitTickMsg{Gen: updated.exitGen})
	updated = next.(Model)
	if cmd != nil {
		t.Fatalf("stale tick should cancel, not reschedule")
	}
	if screen, ok := updated.ModalScreen(); !ok || screen.View(0, 0) != "second" {
		t.Fatalf("expected swapped content after re-present")
	}
}

func TestRedismissIgnoresTicksFromEarlierDismissal(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.SetExitFrames(2)

	// first dismissal arms a tick chain
	m.PresentModal(&fakeScreen{content: "first"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	staleGen := updated.exitGen

	// re-present and dismiss again before the first chain drains
	updated.PresentModal(&fakeScreen{content: "second"})
	next, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated = next.(Model)

	next, cmd := updated.Update(ModalExitTickMsg{Gen: staleGen})
	updated = next.(Model)
	if cmd != nil {
		t.Fatalf("stale chain must not reschedule")
	}
	if updated.exitTicks != 2 {
		t.Fatalf("stale tick advanced the countdown: exitTicks = %d, want 2", updated.exitTicks)
	}

	// the live chain still counts down normally
	next, _ = updated.Update(ModalExitTickMsg{Gen: updated.exitGen})
	updated = next.(Model)
	next, _ = updated.Update(ModalExitTickMsg{Gen: updated.exitGen})
	updated = next.(Model)
	if updated.ModalVisible() {
		t.Fatalf("overlay should be gone after the live countdown finishes")
	}
}

func TestZeroExitFramesRemovesOverlayImmediately(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.SetExitFrames(0)
	m.PresentModal(&fakeScreen{content: "detail"})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.ModalVisible() {
		t.Fatalf("exit_frames=0 should drop the overlay at once")
	}
	if cmd != nil {
		t.Fatalf("no transition ticks expected with exit_frames=0")
	}
}

func TestViewComposesRetainedModalWhileClosing(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.width, m.height = 60, 20
	m.PresentModal(&fakeScreen{content: "RETAINED-CONTENT"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)

	if !strings.Contains(updated.View(), "RETAINED-CONTENT") {
		t.Fatalf("view during exit transition should render retained modal content")
	}
}

func TestHeaderShowsLoadedCounts(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.width, m.height = 80, 24
	m.Data.Unread = 3
	m.Data.Archived = 1

	if view := m.View(); !strings.Contains(view, "3 unread") || !strings.Contains(view, "1 archived") {
		t.Fatalf("header should show the loaded counts, got:\n%s", view)
	}
}

func TestModalMessagesDriveSlot(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)

	next, _ := m.Update(PresentModalCmd(&fakeScreen{content: "detail"})())
	updated := next.(Model)
	if !updated.ModalActive() {
		t.Fatalf("PresentModalMsg should activate the slot")
	}

	next, cmd := updated.Update(DismissModalCmd()())
	updated = next.(Model)
	if updated.ModalActive() {
		t.Fatalf("DismissModalMsg should deactivate the slot")
	}
	if !updated.ModalVisible() || cmd == nil {
		t.Fatalf("message-driven dismissal should still run the exit transition")
	}
}

func TestPopScreenMsgClosesTopScreen(t *testing.T) {
	tab := &routerTab{}
	m := newRouterModel(tab)
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(PopScreenMsg{})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("PopScreenMsg should close the top screen")
	}
}

func TestJumpModeSwitchesTab(t *testing.T) {
	a := &routerTab{}
	m := newRouterModel(a)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	updated := next.(Model)
	next, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	updated = next.(Model)
	if updated.activeTab != 0 {
		t.Fatalf("jump to r should land on the only tab")
	}
	if a.hits != 0 {
		t.Fatalf("jump keys must not leak into the tab")
	}
}
