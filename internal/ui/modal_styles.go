package ui

import (
	"postboard/internal/ui/component"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles contains the styles shared by overlays. Boxes carry no margin
// so the rendered size equals the clickable area.
var ModalStyles = struct {
	Box          lipgloss.Style
	BoxWarning   lipgloss.Style
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Label        lipgloss.Style
	LabelFocus   lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(component.ColorHighlight)).
		Padding(1, 2),
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(component.ColorDanger)).
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorDanger)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorText)),
	LabelFocus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(component.ColorHighlight)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorDanger)),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(component.ColorMuted)),
}
