package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	tab       key.Binding
	next      key.Binding
	previous  key.Binding
	listen    key.Binding
	skip      key.Binding
	exclude   key.Binding
	detail    key.Binding
	facet     key.Binding
	order     key.Binding
	ownership key.Binding
	search    key.Binding
	sync      key.Binding
	yes       key.Binding
	no        key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "section")),
		next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next album")),
		previous:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		listen:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "listened")),
		skip:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		exclude:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exclude")),
		detail:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "detail")),
		facet:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "group by")),
		order:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		ownership: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "owned filter")),
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		sync:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sync")),
		yes:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tab, k.search, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.next, k.previous, k.listen, k.skip, k.exclude},
		{k.facet, k.order, k.ownership, k.search},
		{k.detail, k.sync, k.tab, k.quit},
	}
}
