// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/imusic/internal/ui"
	"github.com/llehouerou/imusic/internal/ui/styles"
)

// Result is sent when the popup closes.
type Result struct {
	Confirmed bool
	Context   any // User-provided context passed through
}

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Update handles a key while the popup is shown.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var confirmed bool
	switch keyMsg.String() {
	case "enter", "y", "Y":
		confirmed = true
	case "esc", "n", "N":
	default:
		return nil
	}

	ctx := m.context
	m.Reset()
	return func() tea.Msg {
		return Result{Confirmed: confirmed, Context: ctx}
	}
}

// View renders the popup box, or "" when hidden.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()

	content := s.Playing.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render("Enter/Y: confirm, Esc/N: cancel")

	box := styles.PanelStyle(true).Padding(0, 2).Render(content)
	if m.Width() == 0 || m.Height() == 0 {
		return box
	}
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, box)
}
