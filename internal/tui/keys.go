package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	SwitchArea key.Binding
	Move       key.Binding
	Hint       key.Binding
	Import     key.Binding
	Start      key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous word"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next word"),
		),
		SwitchArea: key.NewBinding(
			key.WithKeys("up", "down", "tab", "k", "j"),
			key.WithHelp("↑/↓/tab", "switch row"),
		),
		Move: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "move word"),
		),
		Hint: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hint"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import file"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start over"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "default sentences"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.SwitchArea, k.Hint, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SwitchArea, k.Move},
		{k.Hint, k.Import, k.Start, k.Reset},
		{k.Help, k.Quit},
	}
}
