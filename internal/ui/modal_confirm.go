package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal asks a yes/no question. Enter or y runs OnConfirm; Esc is
// the overlay's dismiss key.
type ConfirmModal struct {
	Title     string
	Label     string
	OnConfirm tea.Cmd
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm tea.Cmd) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "y":
			return m, m.OnConfirm
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := ModalStyles.TitleWarning.Render(m.Title) + "\n\n" +
		ModalStyles.Label.Render(m.Label) + "\n\n" +
		ModalStyles.Help.Render("y/Enter: confirm  Esc: cancel")
	return ModalStyles.BoxWarning.Render(content)
}
