package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap describes the bindings surfaced by the help views. Key handling
// itself lives in the input package; this is documentation only.
type keyMap struct {
	Rows       key.Binding
	Pages      key.Binding
	Ends       key.Binding
	Detail     key.Binding
	Toggle     key.Binding
	PageAll    key.Binding
	PageNone   key.Binding
	FirstN     key.Binding
	Clear      key.Binding
	Search     key.Binding
	ClearQuery key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rows:       key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "move")),
		Pages:      key.NewBinding(key.WithKeys("h", "l", "left", "right"), key.WithHelp("h/l", "prev/next page")),
		Ends:       key.NewBinding(key.WithKeys("g", "G"), key.WithHelp("gg/G", "first/last page")),
		Detail:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle artwork")),
		PageAll:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		PageNone:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "unselect page")),
		FirstN:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select first n")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearQuery: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rows, k.Pages, k.Toggle, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rows, k.Pages, k.Ends, k.Detail, k.Refresh},
		{k.Toggle, k.PageAll, k.PageNone, k.FirstN, k.Clear},
		{k.Search, k.ClearQuery, k.Help, k.Quit},
	}
}
