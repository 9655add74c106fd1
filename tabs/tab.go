package tabs

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"marginalia/core"
	"marginalia/core/widgets"
	"marginalia/internal/database/repository"
)

// ReloadMsg asks the receiving tab to re-query its article list.
type ReloadMsg struct{}

// FilterTagMsg narrows the receiving tab to one tag. An empty name clears
// the filter.
type FilterTagMsg struct {
	Name string
}

const loadTimeout = 5 * time.Second

// ArticleList is cursor state over a loaded slice of articles.
type ArticleList struct {
	items  []repository.Article
	cursor int
}

func (l *ArticleList) SetItems(items []repository.Article) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *ArticleList) MoveDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

func (l *ArticleList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *ArticleList) Selected() *repository.Article {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return nil
	}
	a := l.items[l.cursor]
	return &a
}

func (l *ArticleList) Len() int { return len(l.items) }

// listTab is the shared behavior of the library and archive tabs: an
// article list loaded through a query, row navigation, and action keys
// forwarded to the command registry.
type listTab struct {
	id         string
	title      string
	scope      string
	jump       byte
	dateFormat string
	emptyText  string

	query    func(ctx context.Context) ([]repository.Article, error)
	onLoaded func(m *core.Model, count int)

	list      ArticleList
	filterTag string
}

func (t *listTab) ID() string    { return t.id }
func (t *listTab) Title() string { return t.title }
func (t *listTab) Scope() string { return t.scope }
func (t *listTab) JumpKey() byte { return t.jump }

// SelectedArticle exposes the cursor row to palette commands.
func (t *listTab) SelectedArticle() *repository.Article {
	return t.list.Selected()
}

func (t *listTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.loadCmd()
}

func (t *listTab) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		items, err := t.query(ctx)
		return core.DataLoadedMsg{Key: t.id, Data: items, Err: err}
	}
}

func (t *listTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != t.id || msg.Err != nil {
			return nil
		}
		items, ok := msg.Data.([]repository.Article)
		if !ok {
			return nil
		}
		t.list.SetItems(items)
		if t.onLoaded != nil {
			t.onLoaded(m, len(items))
		}
		return nil
	case ReloadMsg, core.TabActivatedMsg:
		return t.loadCmd()
	case FilterTagMsg:
		t.filterTag = msg.Name
		return t.loadCmd()
	case tea.KeyMsg:
		keys := m.KeyRegistry()
		switch {
		case keys.IsAction(msg, "row-down", t.scope):
			t.list.MoveDown()
		case keys.IsAction(msg, "row-up", t.scope):
			t.list.MoveUp()
		case keys.IsAction(msg, "open-detail", t.scope):
			return executeCmd("open-detail")
		case keys.IsAction(msg, "add-article", t.scope):
			return executeCmd("add-article")
		case keys.IsAction(msg, "toggle-archive", t.scope):
			return executeCmd("toggle-archive")
		case keys.IsAction(msg, "refresh-metadata", t.scope):
			return executeCmd("refresh-metadata")
		case keys.IsAction(msg, "filter-tag", t.scope):
			return executeCmd("filter-by-tag")
		}
	}
	return nil
}

// executeCmd routes a key action through the command registry, so keys
// and the palette share one implementation per action.
func executeCmd(id string) tea.Cmd {
	return func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }
}

var (
	rowCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	rowMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	rowEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")).Italic(true)
)

// TagFilter returns the active tag filter, empty when showing everything.
func (t *listTab) TagFilter() string { return t.filterTag }

func (t *listTab) View(m *core.Model, width, height int) string {
	_ = m
	title := t.title
	if t.filterTag != "" {
		title += " · #" + t.filterTag
	}
	content := t.renderRows(width-4, height-2)
	pane := widgets.Pane{
		Title:    fmt.Sprintf("%s (%d)", title, t.list.Len()),
		Height:   height,
		Content:  content,
		Selected: true,
	}
	return pane.Render(width, height)
}

func (t *listTab) renderRows(width, height int) string {
	if t.list.Len() == 0 {
		return rowEmptyStyle.Render(t.emptyText)
	}
	if width < 10 {
		width = 10
	}
	top := 0
	if height > 0 && t.list.cursor >= height {
		top = t.list.cursor - height + 1
	}
	out := ""
	for i := top; i < t.list.Len(); i++ {
		if height > 0 && i-top >= height {
			break
		}
		if out != "" {
			out += "\n"
		}
		out += t.renderRow(t.list.items[i], i == t.list.cursor, width)
	}
	return out
}

func (t *listTab) renderRow(a repository.Article, atCursor bool, width int) string {
	marker := "  "
	if atCursor {
		marker = "▶ "
	}
	title := a.Title
	if title == "" {
		title = a.URL
	}

	meta := a.SiteName
	when := a.AddedAt
	if a.Status == repository.StatusArchived && a.ReadAt != nil {
		when = *a.ReadAt
	}
	if !when.IsZero() {
		if meta != "" {
			meta += " · "
		}
		meta += when.Format(t.dateFormat)
	}

	metaW := ansi.StringWidth(meta)
	titleW := width - len(marker) - len(statusIcon(a.Status)) - 1
	if meta != "" {
		titleW -= metaW + 2
	}
	if titleW < 8 {
		titleW = 8
	}
	title = ansi.Truncate(title, titleW, "…")
	pad := titleW - ansi.StringWidth(title)
	if pad < 0 {
		pad = 0
	}

	line := statusIcon(a.Status) + " " + title
	if meta != "" {
		line += spaces(pad+2) + rowMetaStyle.Render(meta)
	}
	if atCursor {
		return rowCursorStyle.Render(marker) + line
	}
	return marker + line
}

func statusIcon(status string) string {
	switch status {
	case repository.StatusReading:
		return "◐"
	case repository.StatusArchived:
		return "●"
	default:
		return "○"
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
