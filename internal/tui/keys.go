package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the profile view understands.
type KeyMap struct {
	Down       key.Binding
	Up         key.Binding
	HalfDown   key.Binding
	HalfUp     key.Binding
	Top        key.Binding
	Bottom     key.Binding
	HeaderDown key.Binding
	HeaderUp   key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	JumpTab    key.Binding
	Find       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		HalfDown:   key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "half page down")),
		HalfUp:     key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "half page up")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		HeaderDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "collapse header")),
		HeaderUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "expand header")),
		NextPage:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "swipe next")),
		PrevPage:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "swipe prev")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		JumpTab:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to tab")),
		Find:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find tab")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.NextPage, k.PrevPage, k.Find, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.HalfDown, k.HalfUp, k.Top, k.Bottom},
		{k.HeaderDown, k.HeaderUp},
		{k.NextPage, k.PrevPage, k.NextTab, k.PrevTab, k.JumpTab, k.Find},
		{k.Help, k.Quit},
	}
}
