package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/imusic/internal/ui"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newList(n, height int) Model[int] {
	m := New[int](1)
	m.SetSize(40, height+ui.PanelOverhead)
	m.SetFocused(true)
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	m.SetItems(items)
	return m
}

func TestUpdate_Navigation(t *testing.T) {
	m := newList(10, 4)

	m.Update(key("j"))
	m.Update(key("down"))
	assert.Equal(t, 2, m.SelectedIndex())

	m.Update(key("G"))
	assert.Equal(t, 9, m.SelectedIndex())
	start, end := m.VisibleRange()
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)

	m.Update(key("g"))
	assert.Equal(t, 0, m.SelectedIndex())
	start, _ = m.VisibleRange()
	assert.Equal(t, 0, start)

	m.Update(key("k"))
	assert.Equal(t, 0, m.SelectedIndex(), "clamped at top")
}

func TestUpdate_Actions(t *testing.T) {
	m := newList(3, 5)
	m.Select(1)

	assert.Equal(t, Result{Action: ActionEnter, Index: 1}, m.Update(key("enter")))
	assert.Equal(t, Result{Action: ActionDelete, Index: 1}, m.Update(key("d")))
	assert.Equal(t, Result{Action: ActionMoveUp, Index: 1}, m.Update(key("K")))
	assert.Equal(t, Result{Action: ActionMoveDown, Index: 1}, m.Update(key("J")))
}

func TestUpdate_EmptyOrUnfocused(t *testing.T) {
	m := newList(0, 5)
	assert.Equal(t, Result{Index: -1}, m.Update(key("enter")))
	_, ok := m.Selected()
	assert.False(t, ok)

	m = newList(3, 5)
	m.SetFocused(false)
	m.Update(key("j"))
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newList(10, 4)
	m.Select(8)
	m.SetItems([]int{0, 1, 2})

	assert.Equal(t, 2, m.SelectedIndex())
	v, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
