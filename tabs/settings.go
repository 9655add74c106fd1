package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"marginalia/core"
	"marginalia/core/widgets"
)

// SettingsInfo holds the resolved configuration shown on the settings tab.
type SettingsInfo struct {
	ConfigPath   string
	DatabasePath string
	LogPath      string
	DateFormat   string
	FetchTimeout string
	UserAgent    string
}

// SettingsTab is a read-only view of where things live and how the app
// is configured. Editing happens in the config file.
type SettingsTab struct {
	info SettingsInfo
}

func NewSettingsTab(info SettingsInfo) *SettingsTab {
	return &SettingsTab{info: info}
}

func (t *SettingsTab) ID() string    { return "settings" }
func (t *SettingsTab) Title() string { return "Settings" }
func (t *SettingsTab) Scope() string { return "tab:settings" }
func (t *SettingsTab) JumpKey() byte { return 's' }

func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return nil
}

func (t *SettingsTab) View(m *core.Model, width, height int) string {
	paths := strings.Join([]string{
		"Config    " + t.info.ConfigPath,
		"Database  " + t.info.DatabasePath,
		"Log       " + t.info.LogPath,
	}, "\n")
	behavior := strings.Join([]string{
		"Date format    " + t.info.DateFormat,
		// live model state, so the toggle command is reflected immediately
		fmt.Sprintf("Exit frames    %d", m.ExitFrames()),
		"Fetch timeout  " + t.info.FetchTimeout,
		"User agent     " + t.info.UserAgent,
	}, "\n")

	top := widgets.Pane{Title: "Paths", Height: 5, Content: paths}.Render(width, 5)
	bottom := widgets.Pane{Title: "Behavior", Height: 6, Content: behavior}.Render(width, 6)
	return top + "\n" + bottom
}
