package update

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Goal   key.Binding
	Small  key.Binding
	Todo   key.Binding
	Next   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Goal:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "D-Day")),
		Small:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "goal small")),
		Todo:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "to-do")),
		Next:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next widget")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Goal, k.Small, k.Todo, k.Next},
		{k.Reload, k.Help, k.Quit},
	}
}
