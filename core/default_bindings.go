package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"g"}, Action: "jump", Description: "jump mode", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "library", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "archive", Scopes: []string{"*"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "settings", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "row down", Scopes: []string{"tab:library", "tab:archive"}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "row up", Scopes: []string{"tab:library", "tab:archive"}},
		{Keys: []string{"enter"}, Action: "open-detail", Description: "open", Scopes: []string{"tab:library", "tab:archive"}},
		{Keys: []string{"a"}, Action: "add-article", Description: "add", Scopes: []string{"tab:library"}},
		{Keys: []string{"e"}, Action: "toggle-archive", Description: "archive", Scopes: []string{"tab:library", "tab:archive"}},
		{Keys: []string{"r"}, Action: "refresh-metadata", Description: "refetch", Scopes: []string{"tab:library"}},
		{Keys: []string{"t"}, Action: "filter-tag", Description: "tag filter", Scopes: []string{"tab:library"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:detail", "screen:editor", "screen:command"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:command"}},
	}
}
