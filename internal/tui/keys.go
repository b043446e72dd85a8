package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyKind is the abstract key alphabet the display/input host delivers to
// the screen core, decoupled from terminal key names.
type KeyKind int

const (
	KindDigit KeyKind = iota
	KindUp
	KindDown
	KindEnter
	KindCatalogCycle
	KindListSwitch
	KindSave
	KindLoad
)

// KeyEvent is one discrete key press. Digit is meaningful only for
// KindDigit.
type KeyEvent struct {
	Kind  KeyKind
	Digit int
}

// Digit builds a digit key event.
func Digit(d int) KeyEvent {
	return KeyEvent{Kind: KindDigit, Digit: d}
}

// keyMap defines the terminal bindings the bubbletea host translates into
// KeyEvents.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	CatalogCycle key.Binding
	ListSwitch   key.Binding
	Save         key.Binding
	Load         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		CatalogCycle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "catalog"),
		),
		ListSwitch: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "list"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save list"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
