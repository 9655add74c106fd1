package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case DataLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
		} else {
			m.SetStatus("Data loaded: " + msg.Key)
		}
		return m, m.routeToTab(msg)
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case PresentModalMsg:
		m.PresentModal(msg.Screen)
		return m, nil
	case DismissModalMsg:
		return m, m.DismissModal()
	case ModalExitTickMsg:
		return m, m.handleExitTick(msg)
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, m.routeToTab(TabActivatedMsg{})
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			if next != nil {
				m.screens.items[len(m.screens.items)-1] = next
			}
			return m, cmd
		}

		if handled, cmd := m.jumpHandleKey(msg); handled {
			return m, cmd
		}

		// A presented modal owns the keyboard. A closing one does not:
		// once dismissed it is display-only until the transition ends.
		if m.modal.Active() {
			current, _ := m.modal.Value()
			next, cmd, dismiss := current.Update(msg)
			if dismiss {
				return m, tea.Batch(cmd, m.DismissModal())
			}
			if next != nil {
				m.modal.Present(next)
			}
			return m, cmd
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "jump", scope) {
			m.toggleJumpMode()
			return m, nil
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				m.SwitchTab(i)
				return m, m.routeToTab(TabActivatedMsg{})
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}
	if m.modal.Active() {
		current, _ := m.modal.Value()
		next, cmd, dismiss := current.Update(msg)
		if dismiss {
			return m, tea.Batch(cmd, m.DismissModal())
		}
		if next != nil {
			m.modal.Present(next)
		}
		return m, cmd
	}
	return m, m.routeToTab(msg)
}

func (m *Model) routeToTab(msg tea.Msg) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab].Update(m, msg)
}
