// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the pager keybindings.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// General
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "line up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "line down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Pager is the global pager key map.
var Pager = DefaultKeyMap()

// legendGroup is one "keys: description" entry of the status legend.
type legendGroup struct {
	keys string
	desc string
}

// Legend returns the compact key legend shown in the status line:
// "↑↓/j k: line | PgUp/PgDn: page | g/G: top/bottom | q: quit".
func (k KeyMap) Legend() string {
	groups := []legendGroup{
		{mergeArrowHelp(k.Up, k.Down), "line"},
		{joinHelpKeys(k.PageUp, k.PageDown), "page"},
		{joinHelpKeys(k.Top, k.Bottom), "top/bottom"},
		{k.Quit.Help().Key, k.Quit.Help().Desc},
	}

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, g.keys+": "+g.desc)
	}
	return strings.Join(parts, " | ")
}

// mergeArrowHelp combines "↑/k" and "↓/j" help keys into "↑↓/j k".
func mergeArrowHelp(up, down key.Binding) string {
	upArrow, upKey, _ := strings.Cut(up.Help().Key, "/")
	downArrow, downKey, _ := strings.Cut(down.Help().Key, "/")
	return upArrow + downArrow + "/" + downKey + " " + upKey
}

func joinHelpKeys(bindings ...key.Binding) string {
	helpKeys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		helpKeys = append(helpKeys, b.Help().Key)
	}
	return strings.Join(helpKeys, "/")
}
