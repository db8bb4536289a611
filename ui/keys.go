package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings of the monitor.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Mark     key.Binding
	Shot     key.Binding
	Quality  key.Binding
	Title    key.Binding
	Scale    key.Binding
	Reset    key.Binding
	Tooltip  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings shown in the tooltip bar. The least useful
// ones come last so they are the first to be cut on narrow terminals.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Shot, k.Quality, k.Title, k.Scale, k.Reset, k.Quit}
}

// FullHelp returns every binding grouped by purpose.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mark, k.Reset, k.Shot},
		{k.Quality, k.Title, k.Scale, k.Tooltip},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Quit},
	}
}

// keys holds the default key bindings.
var keys = keyMap{
	Mark:     key.NewBinding(key.WithKeys(" "), key.WithHelp("SPACE", "Mark")),
	Shot:     key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "Shot")),
	Quality:  key.NewBinding(key.WithKeys("f7"), key.WithHelp("F7", "Quality")),
	Title:    key.NewBinding(key.WithKeys("f9", "t"), key.WithHelp("F9", "Title")),
	Scale:    key.NewBinding(key.WithKeys("f12", "s"), key.WithHelp("F12", "Scale")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reset max")),
	Tooltip:  key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("F1", "Keys")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "Quit")),
}
