package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultExitFrames is how many ticks a dismissed modal lingers on screen.
const DefaultExitFrames = 6

const exitTickInterval = 30 * time.Millisecond

// PresentModal puts a screen in the detail slot. Presenting during an exit
// transition cancels the transition and swaps the content in place.
func (m *Model) PresentModal(s Screen) {
	if s == nil {
		return
	}
	m.modal.Present(s)
	m.exitTicks = 0
}

// DismissModal clears the detail slot and arms the exit transition. The
// dismissed screen keeps rendering from the retained value until the
// countdown runs out. Calling this with no modal up is a no-op.
func (m *Model) DismissModal() tea.Cmd {
	if !m.modal.Active() {
		return nil
	}
	m.modal.Dismiss()
	// new generation invalidates any tick chain a prior dismissal left behind
	m.exitGen++
	if m.exitFrames <= 0 {
		m.exitTicks = 0
		return nil
	}
	m.exitTicks = m.exitFrames
	return exitTickCmd(m.exitGen)
}

// ModalActive reports whether the detail slot is presenting. Drives input
// routing: a closing modal no longer receives messages.
func (m Model) ModalActive() bool {
	return m.modal.Active()
}

// ModalVisible reports whether the modal overlay should be composed into
// the view, which outlives ModalActive by the exit transition.
func (m Model) ModalVisible() bool {
	return m.modal.Active() || m.exitTicks > 0
}

// ModalScreen returns the screen to render: the presented one while active,
// else the retained one during the exit transition.
func (m Model) ModalScreen() (Screen, bool) {
	return m.modal.Current()
}

func (m *Model) handleExitTick(msg ModalExitTickMsg) tea.Cmd {
	if msg.Gen != m.exitGen {
		// tick from a superseded dismissal
		return nil
	}
	if m.modal.Active() {
		// re-presented mid transition; countdown is moot
		m.exitTicks = 0
		return nil
	}
	if m.exitTicks <= 0 {
		return nil
	}
	m.exitTicks--
	if m.exitTicks > 0 {
		return exitTickCmd(m.exitGen)
	}
	return nil
}

func exitTickCmd(gen int) tea.Cmd {
	return tea.Tick(exitTickInterval, func(time.Time) tea.Msg {
		return ModalExitTickMsg{Gen: gen}
	})
}
