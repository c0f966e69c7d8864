package ui

import (
	"postboard/internal/ui/component"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the shared page and chrome styles.
var Styles = struct {
	Brand     lipgloss.Style // header product name
	Tab       lipgloss.Style // inactive header entry
	TabActive lipgloss.Style // current header entry
	Header    lipgloss.Style // header bar container

	Title    lipgloss.Style // page heading
	Subtitle lipgloss.Style // line under the page heading
	Section  lipgloss.Style // section heading inside a page
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style // key names in hints
	Empty    lipgloss.Style // empty-state text
	Counter  lipgloss.Style // click counters

	Status      lipgloss.Style
	StatusError lipgloss.Style
	HintBox     lipgloss.Style // leader hint bar
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorWhite)).
		Padding(0, 2, 0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorText)).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorAccent)).
		Underline(true).
		Padding(0, 1),
	Header: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		MarginBottom(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorMuted)).
		MarginBottom(1),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorHighlight)).
		MarginTop(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorMuted)),
	Key: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorMuted)).
		Italic(true).
		Padding(1, 0),
	Counter: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorText)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorAccent)),
	StatusError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorDanger)),
	HintBox: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1),
}
