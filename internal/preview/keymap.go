package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview's keyboard shortcuts.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	System key.Binding
	Dark   key.Binding
	Light  key.Binding
	Filter key.Binding
	Copy   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		System: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "system")),
		Dark:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark")),
		Light:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "light")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy hex")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.System, k.Dark, k.Light, k.Filter, k.Copy, k.Quit}
}
