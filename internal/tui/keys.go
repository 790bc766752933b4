package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	submit  key.Binding
	dismiss key.Binding
	edit    key.Binding
	copy    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	dismiss: key.NewBinding(key.WithKeys("ctrl+x")),
	edit:    key.NewBinding(key.WithKeys("ctrl+e")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	quit:    key.NewBinding(key.WithKeys("q")),
}
