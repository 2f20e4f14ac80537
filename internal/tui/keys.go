package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	activate   key.Binding
	deactivate key.Binding
	force      key.Binding
	retry      key.Binding
	copy       key.Binding
	info       key.Binding
	quit       key.Binding
}

var keys = keyMap{
	activate:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "включить")),
	deactivate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "выключить")),
	force:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "сбросить локально")),
	retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "повторить")),
	copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "копировать id телефона")),
	info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "о программе")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.activate, k.deactivate, k.force, k.retry, k.copy, k.info, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
