package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, ActionMoveDown},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, ActionMoveDown},
		{"j", runeKey('j'), ActionMoveDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, ActionMoveUp},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, ActionMoveUp},
		{"k", runeKey('k'), ActionMoveUp},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{"q", runeKey('q'), ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"delete key", tea.KeyMsg{Type: tea.KeyDelete}, ActionDelete},
		{"d", runeKey('d'), ActionDelete},
		{"D", runeKey('D'), ActionForceDelete},
		{"r", runeKey('r'), ActionRefresh},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionNone},
		{"x", runeKey('x'), ActionNone},
		{"J", runeKey('J'), ActionNone},
		{"Q", runeKey('Q'), ActionNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ActionNone},
		{"alt+j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}, Alt: true}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
			// Same input, same answer.
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "move-down", ActionMoveDown.String())
	assert.Equal(t, "force-delete", ActionForceDelete.String())
	assert.Equal(t, "none", Action(99).String())
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	assert.Len(t, keys.ShortHelp(), 4)
	assert.Len(t, keys.FullHelp(), 3)
}
