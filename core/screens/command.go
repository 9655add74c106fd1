package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marginalia/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

// CommandModal is the palette: a query input over a live-filtered command
// list. search is re-run on every keystroke; onSelect emits the message
// that actually executes the command after the modal pops.
type CommandModal struct {
	scope    string
	input    textinput.Model
	options  []CommandOption
	cursor   int
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
}

func NewCommandModal(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandModal {
	inp := textinput.New()
	inp.Prompt = "> "
	inp.Placeholder = "command"
	inp.Focus()
	m := &CommandModal{scope: scope, input: inp, search: search, onSelect: onSelect}
	if search != nil {
		m.options = search("")
	}
	return m
}

func (s *CommandModal) Title() string { return "Commands" }
func (s *CommandModal) Scope() string { return "screen:command" }

func (s *CommandModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "up", "ctrl+p":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil, false
		case "down", "ctrl+n":
			if s.cursor < len(s.options)-1 {
				s.cursor++
			}
			return s, nil, false
		case "enter":
			if s.cursor < 0 || s.cursor >= len(s.options) {
				return s, nil, true
			}
			opt := s.options[s.cursor]
			if opt.Disabled {
				reason := opt.Reason
				if reason == "" {
					reason = "command is disabled"
				}
				return s, core.StatusCmd(reason), false
			}
			if s.onSelect != nil {
				id := opt.ID
				return s, func() tea.Msg { return s.onSelect(id) }, true
			}
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before && s.search != nil {
		s.options = s.search(s.input.Value())
		if s.cursor >= len(s.options) {
			s.cursor = len(s.options) - 1
		}
		if s.cursor < 0 {
			s.cursor = 0
		}
	}
	return s, cmd, false
}

var (
	cmdActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	cmdDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	cmdDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

func (s *CommandModal) View(width, height int) string {
	lines := []string{s.input.View(), ""}
	visible := len(s.options)
	if height > 4 && visible > height-4 {
		visible = height - 4
	}
	for i := 0; i < visible; i++ {
		opt := s.options[i]
		marker := "  "
		if i == s.cursor {
			marker = "▶ "
		}
		name := opt.Name
		switch {
		case opt.Disabled:
			name = cmdDisabledStyle.Render(name)
		case i == s.cursor:
			name = cmdActiveStyle.Render(name)
		}
		line := marker + name
		if opt.Desc != "" {
			line += "  " + cmdDescStyle.Render(opt.Desc)
		}
		lines = append(lines, line)
	}
	if len(s.options) == 0 {
		lines = append(lines, cmdDescStyle.Render("no matching commands"))
	}
	return strings.Join(lines, "\n")
}
