package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string untouched", "Bohemian Rhapsody", "Bohemian Rhapsody"},
		{"control characters removed", "Track\x00\x1b01", "Track01"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "caf\xe9", "caf"},
		{"nbsp becomes space", "Sigur\u00a0Rós", "Sigur Rós"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"cut with ellipsis", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"wide characters", "日本語の歌", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestFit_ExactWidth(t *testing.T) {
	for _, s := range []string{"", "abc", "a much longer title than fits", "日本語"} {
		if w := lipgloss.Width(Fit(s, 8)); w != 8 {
			t.Errorf("Fit(%q, 8) width = %d, want 8", s, w)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 12)
	if got != "left   right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row() too narrow = %q, want single space gap", got)
	}
}

func TestColumns(t *testing.T) {
	got := Columns(20, []int{6, 5}, "Title", "Artist", "03:00")
	want := "Title   Arti…  03:00"
	if got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
	if w := lipgloss.Width(got); w != 20 {
		t.Errorf("Columns() width = %d, want 20", w)
	}
}
