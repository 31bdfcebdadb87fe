package tui

import "github.com/charmbracelet/bubbles/key"

// plannerKeyMap defines key bindings for the planner screen
type plannerKeyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Mode      key.Binding
	Generate  key.Binding
	Results   key.Binding
	Leave     key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k plannerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Toggle, k.Generate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k plannerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Up, k.Down},
		{k.Toggle, k.Mode, k.Generate, k.Results, k.Quit},
	}
}

func newPlannerKeyMap() plannerKeyMap {
	return plannerKeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "select"),
		),
		Mode: key.NewBinding(
			key.WithKeys("left", "right", "m"),
			key.WithHelp("←/→", "switch mode"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		Results: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "last result"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// resultKeyMap defines key bindings for the result screen
type resultKeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Scroll   key.Binding
	Back     key.Binding
	Generate key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k resultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Scroll, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Scroll},
		{k.Back, k.Generate, k.Quit},
	}
}

func newResultKeyMap() resultKeyMap {
	return resultKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back to planner"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "regenerate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings adapts an ad-hoc list of bindings to help.KeyMap so footers can
// mix screen keys with component keys.
type bindings []key.Binding

// ShortHelp returns keybindings to be shown in the mini help view
func (b bindings) ShortHelp() []key.Binding {
	return b
}

// FullHelp returns keybindings for the expanded help view
func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}
