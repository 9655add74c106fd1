package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

// PresentModalMsg puts a screen in the detail presentation slot.
type PresentModalMsg struct {
	Screen Screen
}

// DismissModalMsg clears the detail slot, starting the exit transition.
type DismissModalMsg struct{}

// ModalExitTickMsg advances the exit transition countdown. Gen identifies
// the dismissal that armed the tick chain; stale generations are dropped.
type ModalExitTickMsg struct {
	Gen int
}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

// TabActivatedMsg is routed to a tab right after it becomes active, so it
// can refresh stale data.
type TabActivatedMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func PresentModalCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PresentModalMsg{Screen: s} }
}

func DismissModalCmd() tea.Cmd {
	return func() tea.Msg { return DismissModalMsg{} }
}
