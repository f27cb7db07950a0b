package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	edit    key.Binding
	copy    key.Binding
	reload  key.Binding
	logout  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	edit:    key.NewBinding(key.WithKeys("ctrl+e")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	reload:  key.NewBinding(key.WithKeys("ctrl+r")),
	logout:  key.NewBinding(key.WithKeys("ctrl+l")),
}
