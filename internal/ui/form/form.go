// Package form provides a popup with labelled text inputs.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/imusic/internal/ui"
	"github.com/llehouerou/imusic/internal/ui/styles"
)

const inputWidth = 48

// Field describes one input.
type Field struct {
	Label       string
	Placeholder string
	Value       string
}

// Result is sent when the form closes.
type Result struct {
	Values   []string // one per field, in order
	Context  any      // User-provided context passed through
	Canceled bool     // True if user pressed Escape
}

// Model is a popup form. Enter moves to the next field and submits on the
// last one.
type Model struct {
	ui.Base
	title   string
	labels  []string
	inputs  []textinput.Model
	focus   int
	context any
	active  bool
}

// New creates a new form model.
func New() Model {
	return Model{}
}

// Show opens the form with the first field focused.
func (m *Model) Show(title string, context any, fields ...Field) tea.Cmd {
	s := styles.T().S()

	m.title = title
	m.context = context
	m.labels = make([]string, len(fields))
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = f.Placeholder
		in.Width = inputWidth
		in.PromptStyle = s.Playing
		in.TextStyle = s.Base
		in.PlaceholderStyle = s.Subtle
		in.SetValue(f.Value)
		m.labels[i] = f.Label
		m.inputs[i] = in
	}
	m.active = true
	return m.setFocus(0)
}

// Reset closes the form.
func (m *Model) Reset() {
	m.title = ""
	m.labels = nil
	m.inputs = nil
	m.focus = 0
	m.context = nil
	m.active = false
}

// Active returns whether the form is shown.
func (m Model) Active() bool {
	return m.active
}

// Focused returns the index of the focused field.
func (m Model) Focused() int {
	return m.focus
}

// Values returns the current field values.
func (m Model) Values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// Update handles a message while the form is shown.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m.close(true)
		case "enter":
			if m.focus == len(m.inputs)-1 {
				return m.close(false)
			}
			return m.setFocus(m.focus + 1)
		case "tab", "down":
			return m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1)
		}
	}

	if len(m.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) close(canceled bool) tea.Cmd {
	res := Result{Context: m.context, Canceled: canceled}
	if !canceled {
		res.Values = m.Values()
	}
	m.Reset()
	return func() tea.Msg { return res }
}

// View renders the popup box, or "" when hidden.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Playing.Render(m.title))
	for i, in := range m.inputs {
		label := s.Muted
		if i == m.focus {
			label = s.Title
		}
		b.WriteString("\n\n" + label.Render(m.labels[i]) + "\n" + in.View())
	}
	b.WriteString("\n\n" + s.Subtle.Render("Enter: next/confirm, Tab: switch field, Esc: cancel"))

	box := styles.PanelStyle(true).Padding(0, 2).Render(b.String())
	if m.Width() == 0 || m.Height() == 0 {
		return box
	}
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, box)
}
