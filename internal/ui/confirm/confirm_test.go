package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

const testContext = "ctx"

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func getResult(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	result, ok := cmd().(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", cmd())
	}
	return result
}

func TestUpdate_Keys(t *testing.T) {
	tests := []struct {
		key       string
		confirmed bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := New()
			m.Show("Delete?", "Are you sure?", testContext)

			result := getResult(t, m.Update(keyMsg(tt.key)))
			if result.Confirmed != tt.confirmed {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.confirmed)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
			if m.Active() {
				t.Error("popup still active after answer")
			}
		})
	}
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	m := New()
	m.Show("Delete?", "Are you sure?", nil)

	if cmd := m.Update(keyMsg("x")); cmd != nil {
		t.Error("expected nil command for unbound key")
	}
	if !m.Active() {
		t.Error("popup closed on unbound key")
	}
}

func TestUpdate_Inactive(t *testing.T) {
	m := New()
	if cmd := m.Update(keyMsg("y")); cmd != nil {
		t.Error("inactive popup returned a command")
	}
}

func TestView(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("hidden popup should render nothing")
	}

	m.Show("Delete song?", "Alpha will be removed", nil)
	m.SetSize(60, 12)
	view := m.View()
	for _, want := range []string{"Delete song?", "Alpha will be removed", "Esc/N"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, want 12", lines)
	}
}
