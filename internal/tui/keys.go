package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	sync    key.Binding
	push    key.Binding
	pull    key.Binding
	update  key.Binding
	install key.Binding
	init    key.Binding
	delete  key.Binding
	copy    key.Binding
	info    key.Binding
	refresh key.Binding
	esc     key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	sync:    key.NewBinding(key.WithKeys("s")),
	push:    key.NewBinding(key.WithKeys("p")),
	pull:    key.NewBinding(key.WithKeys("l")),
	update:  key.NewBinding(key.WithKeys("u")),
	install: key.NewBinding(key.WithKeys("U")),
	init:    key.NewBinding(key.WithKeys("i")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	info:    key.NewBinding(key.WithKeys("b")),
	refresh: key.NewBinding(key.WithKeys("r")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
