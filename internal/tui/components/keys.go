package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

// AddFormKeyMap defines key bindings for the add-movie form
type AddFormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultAddFormKeyMap returns the default add form key bindings
func DefaultAddFormKeyMap() AddFormKeyMap {
	return AddFormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// DefaultTableKeyMap returns table navigation bindings that leave the
// single-letter action keys (d, u) free for the app.
func DefaultTableKeyMap() table.KeyMap {
	km := table.DefaultKeyMap()
	km.HalfPageUp = key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "half page up"),
	)
	km.HalfPageDown = key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "half page down"),
	)
	return km
}

// Package-level key map instances
var (
	AddFormKeys = DefaultAddFormKeyMap()
)
