package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the non-letter key bindings. Letter keys always go to the
// selection trail, so every command sits on a key no answer can use.
type KeyMap struct {
	Release    key.Binding
	Backtrack  key.Binding
	Clear      key.Binding
	HintSingle key.Binding
	HintMulti  key.Binding
	HintWord   key.Binding
	Wheel      key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Release: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit word"),
		),
		Backtrack: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "undo letter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		HintSingle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "hint: one letter"),
		),
		HintMulti: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "hint: letters"),
		),
		HintWord: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hint: whole word"),
		),
		Wheel: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "spin wheel"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Release, k.Backtrack, k.HintSingle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Release, k.Backtrack, k.Clear},
		{k.HintSingle, k.HintMulti, k.HintWord},
		{k.Wheel, k.Reset, k.Quit},
	}
}
