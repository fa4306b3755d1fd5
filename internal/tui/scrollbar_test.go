package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderScrollBarLine_HiddenWhenEverythingFits(t *testing.T) {
	if got := renderVerticalScrollBarLine(40, 0, 10, 10); got != "" {
		t.Fatalf("expected no scrollbar, got %q", got)
	}
}

func TestRenderScrollBarLine_Width(t *testing.T) {
	out := renderVerticalScrollBarLine(40, 5, 10, 50)
	if w := lipgloss.Width(out); w != 40 {
		t.Fatalf("width = %d, want 40", w)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "▲") || !strings.Contains(plain, "▼") || !strings.Contains(plain, "━") {
		t.Fatalf("scrollbar = %q", plain)
	}
}

func TestRenderScrollBarLine_NarrowFallsBackToCounter(t *testing.T) {
	out := ansi.Strip(renderVerticalScrollBarLine(10, 3, 10, 50))
	if !strings.Contains(out, "3/40") {
		t.Fatalf("narrow scrollbar = %q", out)
	}
}

func TestRenderHorizontalScrollBarLine(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		thumbAt string
	}{
		{"start", 0, "◀━"},
		{"end", 2, "━▶"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(renderHorizontalScrollBarLine(60, tt.offset, 4, 6))
			if !strings.Contains(out, "↔") || !strings.Contains(out, tt.thumbAt) {
				t.Fatalf("scrollbar = %q, want thumb at %q", out, tt.thumbAt)
			}
		})
	}
}

func TestFitAnsiWidth(t *testing.T) {
	if got := fitAnsiWidth("abc", 5); got != "abc  " {
		t.Fatalf("pad = %q", got)
	}
	if got := fitAnsiWidth("abcdef", 3); got != "abc" {
		t.Fatalf("cut = %q", got)
	}
	if got := fitAnsiWidth("abc", 0); got != "" {
		t.Fatalf("zero width = %q", got)
	}
}
