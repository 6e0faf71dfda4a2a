package components

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Jump     key.Binding
	Source   key.Binding
	Linux    key.Binding
	Windows  key.Binding
	Feedback key.Binding
	Submit   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Jump: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump"),
	),
	Source: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "source"),
	),
	Linux: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "linux"),
	),
	Windows: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "windows"),
	),
	Feedback: key.NewBinding(
		key.WithKeys("f", "ctrl+f"),
		key.WithHelp("f", "feedback"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "send"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Source, k.Linux, k.Windows, k.Feedback, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Jump},
		{k.Source, k.Linux, k.Windows},
		{k.Feedback, k.Submit, k.Help, k.Quit},
	}
}

// TypingHelp is shown while the feedback textarea has focus.
func (k KeyMap) TypingHelp() []key.Binding {
	return []key.Binding{
		k.Submit,
		key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "close")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
