package form

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

const testContext = "test-ctx"

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	return m.Update(tea.KeyMsg{Type: t})
}

func getResult(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := cmd()
	res, ok := msg.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg)
	}
	return res
}

func twoFields() Model {
	m := New()
	m.Show("New playlist", testContext,
		Field{Label: "Name"},
		Field{Label: "Cover", Value: "/img/c.png"},
	)
	return m
}

func TestForm_EnterAdvancesThenSubmits(t *testing.T) {
	m := twoFields()

	typeText(&m, "Road trip")
	press(&m, tea.KeyEnter)
	if !m.Active() {
		t.Fatal("enter on the first field must not submit")
	}
	if m.Focused() != 1 {
		t.Fatalf("Focused() = %d, want 1", m.Focused())
	}

	res := getResult(t, press(&m, tea.KeyEnter))
	if res.Canceled {
		t.Error("expected Canceled=false")
	}
	if !slices.Equal(res.Values, []string{"Road trip", "/img/c.png"}) {
		t.Errorf("Values = %q", res.Values)
	}
	if res.Context != testContext {
		t.Errorf("Context = %v, want %v", res.Context, testContext)
	}
	if m.Active() {
		t.Error("form should close after submit")
	}
}

func TestForm_EscapeCancels(t *testing.T) {
	m := twoFields()
	typeText(&m, "x")

	res := getResult(t, press(&m, tea.KeyEsc))
	if !res.Canceled {
		t.Error("expected Canceled=true")
	}
	if res.Values != nil {
		t.Errorf("Values = %q, want nil on cancel", res.Values)
	}
	if m.Active() {
		t.Error("form should close after cancel")
	}
}

func TestForm_TabWraps(t *testing.T) {
	m := twoFields()

	press(&m, tea.KeyTab)
	press(&m, tea.KeyTab)
	if m.Focused() != 0 {
		t.Errorf("Focused() = %d after two tabs, want 0", m.Focused())
	}
	press(&m, tea.KeyShiftTab)
	if m.Focused() != 1 {
		t.Errorf("Focused() = %d after shift+tab, want 1", m.Focused())
	}
}

func TestForm_TypingGoesToFocusedField(t *testing.T) {
	m := twoFields()
	press(&m, tea.KeyTab)
	typeText(&m, "!")

	if got := m.Values(); got[0] != "" || got[1] != "/img/c.png!" {
		t.Errorf("Values = %q", got)
	}
}

func TestForm_InactiveIgnoresKeys(t *testing.T) {
	m := New()
	if cmd := press(&m, tea.KeyEnter); cmd != nil {
		t.Error("inactive form should ignore keys")
	}
	if m.View() != "" {
		t.Error("inactive form should render nothing")
	}
}

func TestForm_ViewShowsLabels(t *testing.T) {
	m := twoFields()
	m.SetSize(80, 24)

	view := m.View()
	for _, want := range []string{"New playlist", "Name", "Cover"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
