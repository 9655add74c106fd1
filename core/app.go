package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a modal unit of UI layered over the active tab. Update returns
// the replacement screen, an optional command, and whether the screen wants
// to close.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is a top-level view selectable from the header.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model, width, height int) string
}

// TabInitializer lets a tab schedule work when the program starts.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// TabJumpKey marks a tab as reachable through jump mode.
type TabJumpKey interface {
	JumpKey() byte
}

// AppData carries the lightweight counts shown in the header. Tabs update
// them from their loaded lists.
type AppData struct {
	Unread   int
	Archived int
}

// Model is the root Bubble Tea model. It owns tab selection, the screen
// stack (palette, pickers, editors) and the presentation slot for the
// detail modal. The detail slot deliberately separates "modal on screen"
// from "modal data": dismissal clears the former while the latter stays
// renderable through the exit transition.
type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack

	modal      Presentation[Screen]
	exitTicks  int
	exitFrames int
	exitGen    int

	keys     *KeyRegistry
	commands *CommandRegistry

	status    string
	statusErr bool
	quitting  bool
	jump      JumpMode

	Data AppData

	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, data AppData) Model {
	return Model{
		tabs:       tabs,
		keys:       keys,
		commands:   commands,
		Data:       data,
		status:     "Ready",
		activeTab:  0,
		width:      100,
		height:     32,
		exitFrames: DefaultExitFrames,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveScope resolves the scope used for key and command lookups: the top
// stacked screen wins, then an active detail modal, then the current tab.
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if s, ok := m.modal.Value(); ok {
		return s.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

// SetExitFrames configures how many transition ticks a dismissed modal
// stays visible for. Zero removes the overlay immediately.
func (m *Model) SetExitFrames(n int) {
	if n < 0 {
		n = 0
	}
	m.exitFrames = n
}

func (m Model) ExitFrames() int {
	return m.exitFrames
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}

// ScreenStack holds stacked modal screens, most recent on top.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
