package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a single key press asks the branch list to do.
type Action int

const (
	ActionNone Action = iota
	ActionMoveDown
	ActionMoveUp
	ActionQuit
	ActionDelete
	ActionForceDelete
	ActionRefresh
)

func (a Action) String() string {
	switch a {
	case ActionMoveDown:
		return "move-down"
	case ActionMoveUp:
		return "move-up"
	case ActionQuit:
		return "quit"
	case ActionDelete:
		return "delete"
	case ActionForceDelete:
		return "force-delete"
	case ActionRefresh:
		return "refresh"
	default:
		return "none"
	}
}

type KeyMap struct {
	Down        key.Binding
	Up          key.Binding
	Quit        key.Binding
	Delete      key.Binding
	ForceDelete key.Binding
	Refresh     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "d"),
			key.WithHelp("d", "delete"),
		),
		ForceDelete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "force delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Action maps a key press to an Action. Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Down):
		return ActionMoveDown
	case key.Matches(msg, k.Up):
		return ActionMoveUp
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Delete):
		return ActionDelete
	case key.Matches(msg, k.ForceDelete):
		return ActionForceDelete
	case key.Matches(msg, k.Refresh):
		return ActionRefresh
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Delete, k.ForceDelete},
		{k.Refresh, k.Quit},
	}
}
