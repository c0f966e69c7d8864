// Package textutil holds width-aware text helpers for terminal rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Clamp word-wraps s to width columns and keeps at most n lines. The last
// kept line ends in Ellipsis when lines were dropped.
func Clamp(s string, width, n int) string {
	if width <= 0 || n <= 0 {
		return s
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	lines = lines[:n]
	last := lines[n-1]
	if runewidth.StringWidth(last)+runewidth.StringWidth(Ellipsis) > width {
		last = runewidth.Truncate(last, width-runewidth.StringWidth(Ellipsis), "")
	}
	lines[n-1] = last + Ellipsis
	return strings.Join(lines, "\n")
}
