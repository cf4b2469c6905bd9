// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/imusic/internal/ui"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone     Action = iota
	ActionEnter           // enter
	ActionDelete          // d or delete
	ActionMoveUp          // K: move the selected item up
	ActionMoveDown        // J: move the selected item down
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

// Model is a scrollable list. The parent renders the rows in VisibleRange.
type Model[T any] struct {
	ui.Base
	items  []T
	pos    int
	offset int
	margin int
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{margin: margin}
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.pos = clamp(m.pos, len(items)-1)
	m.ensureVisible()
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if m.pos >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.pos], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.pos
}

// Select moves the cursor to i, clamped to bounds.
func (m *Model[T]) Select(i int) {
	m.pos = clamp(i, len(m.items)-1)
	m.ensureVisible()
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	h := m.ListHeight(ui.PanelOverhead)
	if len(m.items) == 0 || h <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+h, len(m.items))
}

// Update handles a key and returns the action that occurred.
func (m *Model[T]) Update(msg tea.Msg) Result {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return Result{Index: -1}
	}

	h := m.ListHeight(ui.PanelOverhead)
	switch key.String() {
	case "j", "down":
		m.Select(m.pos + 1)
	case "k", "up":
		m.Select(m.pos - 1)
	case "g", "home":
		m.Select(0)
	case "G", "end":
		m.Select(len(m.items) - 1)
	case "ctrl+d", "pgdown":
		m.Select(m.pos + max(h/2, 1))
	case "ctrl+u", "pgup":
		m.Select(m.pos - max(h/2, 1))
	case "enter":
		return m.act(ActionEnter)
	case "d", "delete":
		return m.act(ActionDelete)
	case "K":
		return m.act(ActionMoveUp)
	case "J":
		return m.act(ActionMoveDown)
	}
	return Result{Index: -1}
}

func (m Model[T]) act(a Action) Result {
	if len(m.items) == 0 {
		return Result{Index: -1}
	}
	return Result{Action: a, Index: m.pos}
}

// ensureVisible scrolls so the cursor stays margin rows away from the edges.
func (m *Model[T]) ensureVisible() {
	h := m.ListHeight(ui.PanelOverhead)
	if h <= 0 || len(m.items) == 0 {
		m.offset = 0
		return
	}
	margin := min(m.margin, (h-1)/2)
	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+h-margin {
		m.offset = m.pos - h + margin + 1
	}
	m.offset = clamp(m.offset, len(m.items)-h)
}

func clamp(v, maxVal int) int {
	return max(min(v, maxVal), 0)
}
