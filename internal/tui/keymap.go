package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the checklist grid.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Editing
	Toggle     key.Binding
	MarkAll    key.Binding
	ClearAll   key.Binding

	// Actions
	Save      key.Binding
	ExportPDF key.Binding

	// Application
	ToggleHelp key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "go to start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "go to end"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" ", "x", "enter"),
			key.WithHelp("Space/x", "toggle provided"),
		),
		MarkAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark all provided"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "clear all provided"),
		),

		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save session"),
		),
		ExportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export PDF"),
		),

		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.ExportPDF, k.ToggleHelp, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Home, k.End, k.Toggle, k.MarkAll},
		{k.ClearAll, k.Save, k.ExportPDF, k.Quit},
	}
}
