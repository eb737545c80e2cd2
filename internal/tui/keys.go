package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next         key.Binding
	Prev         key.Binding
	SelfEmployed key.Binding
	Married      key.Binding
	Reverse      key.Binding
	NextYear     key.Binding
	PrevYear     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		SelfEmployed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "self-employed"),
		),
		Married: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "married"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("y", "pgup"),
			key.WithHelp("y", "next year"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("Y", "pgdown"),
			key.WithHelp("Y", "previous year"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelfEmployed, k.Married, k.Reverse, k.NextYear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.SelfEmployed, k.Married, k.Reverse},
		{k.NextYear, k.PrevYear},
		{k.Help, k.Quit},
	}
}
