package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	NextFacet key.Binding
	PrevFacet key.Binding

	// Actions
	Add          key.Binding
	Submit       key.Binding
	ToggleFrozen key.Binding
	Edit         key.Binding
	Delete       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Cancel       key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
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
		NextFacet: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("→/Tab", "next filter"),
		),
		PrevFacet: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("←/Shift+Tab", "previous filter"),
		),

		Add: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "add item"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "save"),
		),
		ToggleFrozen: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("Ctrl+F", "toggle freezer"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d/x", "delete"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab/↓", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab/↑", "previous category"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.NextFacet, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFacet, k.PrevFacet},
		{k.Add, k.Submit, k.ToggleFrozen, k.Cancel},
		{k.Edit, k.NextCategory, k.PrevCategory, k.Delete},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
