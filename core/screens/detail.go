package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"marginalia/core"
)

type DetailRow struct {
	Label string
	Value string
}

// DetailScreen is a read-only view of one record, shown through the model's
// presentation slot rather than the screen stack. It holds a copy of its
// data, so it renders unchanged while the exit transition plays after the
// slot is dismissed.
type DetailScreen struct {
	title  string
	scope  string
	rows   []DetailRow
	body   string
	scroll int
}

func NewDetailScreen(title, scope string, rows []DetailRow, body string) *DetailScreen {
	return &DetailScreen{title: title, scope: scope, rows: rows, body: body}
}

func (s *DetailScreen) Title() string { return s.title }
func (s *DetailScreen) Scope() string { return s.scope }

func (s *DetailScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return s, nil, true
		case "j", "down":
			s.scroll++
			return s, nil, false
		case "k", "up":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil, false
		}
	}
	return s, nil, false
}

var (
	detailTitleStyle = lipgloss.NewStyle().Bold(true)
	detailLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

func (s *DetailScreen) View(width, height int) string {
	lines := []string{detailTitleStyle.Render(ansi.Truncate(s.title, max(1, width), "…")), ""}
	labelW := 0
	for _, r := range s.rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
	}
	for _, r := range s.rows {
		label := detailLabelStyle.Render(padRight(r.Label, labelW))
		lines = append(lines, label+"  "+ansi.Truncate(r.Value, max(1, width-labelW-2), "…"))
	}
	if s.body != "" {
		lines = append(lines, "")
		body := strings.Split(s.body, "\n")
		if s.scroll >= len(body) {
			s.scroll = len(body) - 1
		}
		lines = append(lines, body[s.scroll:]...)
	}
	lines = append(lines, "", "esc: close  j/k: scroll")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
