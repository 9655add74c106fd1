package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marginalia/core"
)

type PickerOption struct {
	ID    string
	Label string
	Desc  string
}

// PickerModal is a stacked filter-and-select list over core.Picker. Typing
// narrows the list, enter picks, esc cancels.
type PickerModal struct {
	title      string
	scope      string
	picker     *core.Picker
	all        map[string]PickerOption
	onSelected func(PickerOption) tea.Msg
}

func NewPickerModal(title, scope string, options []PickerOption, onSelected func(PickerOption) tea.Msg) *PickerModal {
	items := make([]core.PickerItem, 0, len(options))
	all := make(map[string]PickerOption, len(options))
	for _, opt := range options {
		all[opt.ID] = opt
		items = append(items, core.PickerItem{
			ID:     opt.ID,
			Label:  opt.Label,
			Meta:   opt.Desc,
			Search: opt.Label + " " + opt.Desc,
		})
	}
	return &PickerModal{
		title:      title,
		scope:      scope,
		picker:     core.NewPicker(title, items),
		all:        all,
		onSelected: onSelected,
	}
}

func (s *PickerModal) Title() string { return s.title }
func (s *PickerModal) Scope() string { return s.scope }

func (s *PickerModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch keyMsg.String() {
	case "esc":
		return s, nil, true
	case "up", "ctrl+p":
		s.picker.CursorUp()
		return s, nil, false
	case "down", "ctrl+n":
		s.picker.CursorDown()
		return s, nil, false
	case "backspace":
		q := s.picker.Query()
		if q != "" {
			s.picker.SetQuery(q[:len(q)-1])
		}
		return s, nil, false
	case "enter":
		item, ok := s.picker.Selected()
		if !ok {
			return s, nil, true
		}
		opt, exists := s.all[item.ID]
		if !exists || s.onSelected == nil {
			return s, nil, true
		}
		return s, func() tea.Msg { return s.onSelected(opt) }, true
	}
	if keyMsg.Type == tea.KeyRunes {
		s.picker.SetQuery(s.picker.Query() + string(keyMsg.Runes))
	}
	return s, nil, false
}

var pickerDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))

func (s *PickerModal) View(width, height int) string {
	filter := s.picker.Query()
	if filter == "" {
		filter = pickerDimStyle.Render("(type to filter)")
	}
	lines := []string{s.title, "Filter: " + filter, ""}
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, pickerDimStyle.Render("  no matches"))
	}
	for idx, item := range items {
		prefix := "  "
		if idx == s.picker.Cursor() {
			prefix = "▶ "
		}
		label := item.Label
		if item.Meta != "" {
			label += "  " + pickerDimStyle.Render(item.Meta)
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", "enter: select  esc: cancel")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
