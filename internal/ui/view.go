package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: a page or overlay with its own
// Init/Update/View cycle. Update returns the (possibly replaced) view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
