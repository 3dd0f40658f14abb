package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the picker reacts to outside of text entry.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Toggle    key.Binding
	Space     key.Binding
	ToggleAll key.Binding
	ClearAll  key.Binding
	Focus     key.Binding
	TagLeft   key.Binding
	TagRight  key.Binding
	TagRemove key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Submit    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle"),
		),
		Space: key.NewBinding(key.WithKeys(" ")),
		ToggleAll: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("alt+a", "all"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "clear"),
		),
		Focus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "tags"),
		),
		TagLeft:   key.NewBinding(key.WithKeys("left", "h")),
		TagRight:  key.NewBinding(key.WithKeys("right", "l")),
		TagRemove: key.NewBinding(key.WithKeys("backspace", "delete", "x")),
		MoveLeft:  key.NewBinding(key.WithKeys("shift+left", "H")),
		MoveRight: key.NewBinding(key.WithKeys("shift+right", "L")),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.ToggleAll, k.ClearAll, k.Focus, k.Submit, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// tagHelp is shown while the tag row has focus.
type tagHelp struct {
	keys     keyMap
	sortable bool
}

func (t tagHelp) ShortHelp() []key.Binding {
	left := key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "pick"))
	remove := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove"))
	out := []key.Binding{left, remove}
	if t.sortable {
		out = append(out, key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←/→", "reorder")))
	}
	return append(out, t.keys.Focus, t.keys.Submit)
}

func (t tagHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{t.ShortHelp()}
}

var _ help.KeyMap = keyMap{}
