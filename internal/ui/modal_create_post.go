package ui

import (
	"errors"
	"math"
	"strings"

	"postboard/internal/ui/component"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports the fields that were blank after trimming.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0] + " is required"
	}
	return strings.Join(e.Fields, " and ") + " are required"
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ModalState is the creation modal's lifecycle state.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "Open"
	}
	return "Closed"
}

// Focus targets inside the modal, in tab order.
const (
	focusTitle   = "title"
	focusContent = "content"
	focusSave    = "save"
	focusCancel  = "cancel"
)

const (
	modalMaxWidth = 56
	modalMinWidth = 28
)

// CreatePostModal collects a title and content for a new post. It starts
// Closed; Open shows it and Submit or Close hides it again. Successful
// submissions are delivered to OnCreate handlers.
type CreatePostModal struct {
	state    ModalState
	title    textinput.Model
	content  textarea.Model
	focus    *FocusRing
	save     component.Button
	cancel   component.Button
	err      error
	handlers []func(title, content string)

	// screen size, for centering and outside-click detection
	width, height int
}

var _ View = (*CreatePostModal)(nil)

// NewCreatePostModal creates a closed modal.
func NewCreatePostModal() *CreatePostModal {
	ti := textinput.New()
	ti.Placeholder = "Enter post title"
	ti.Prompt = ""
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Enter post content"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(4)

	m := &CreatePostModal{
		title:   ti,
		content: ta,
		focus:   NewFocusRing(focusTitle, focusContent, focusSave, focusCancel),
		save:    component.MustButton("Save Post", component.ButtonConfig{Size: component.SizeSmall}),
		cancel: component.MustButton("Cancel", component.ButtonConfig{
			Size:    component.SizeSmall,
			Variant: component.VariantSecondary,
		}),
	}
	m.setInnerWidth(modalMaxWidth)
	return m
}

// State returns the current lifecycle state.
func (m *CreatePostModal) State() ModalState { return m.state }

// Err returns the validation error from the last failed Submit, if any.
func (m *CreatePostModal) Err() error { return m.err }

// Title and Content return the raw field values.
func (m *CreatePostModal) Title() string   { return m.title.Value() }
func (m *CreatePostModal) Content() string { return m.content.Value() }

// SetFields replaces both field values.
func (m *CreatePostModal) SetFields(title, content string) {
	m.title.SetValue(title)
	m.content.SetValue(content)
}

// OnCreate registers fn to receive trimmed values of each successful submit.
func (m *CreatePostModal) OnCreate(fn func(title, content string)) {
	m.handlers = append(m.handlers, fn)
}

// Open shows the modal with the title focused. It is a no-op when already
// open.
func (m *CreatePostModal) Open() {
	if m.state == ModalOpen {
		return
	}
	m.state = ModalOpen
	m.err = nil
	m.focus.Reset()
	m.syncFocus()
}

// Close hides the modal and discards its fields without emitting a
// creation event.
func (m *CreatePostModal) Close() {
	m.state = ModalClosed
	m.err = nil
	m.title.Reset()
	m.content.Reset()
	m.title.Blur()
	m.content.Blur()
}

// Submit validates the fields. On success every OnCreate handler receives
// the trimmed values and the modal closes. A blank field yields a
// *ValidationError and leaves the modal open and unchanged. Submit on a
// closed modal does nothing.
func (m *CreatePostModal) Submit() error {
	if m.state != ModalOpen {
		return nil
	}
	title := strings.TrimSpace(m.title.Value())
	content := strings.TrimSpace(m.content.Value())

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if content == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		m.err = &ValidationError{Fields: missing}
		return m.err
	}

	for _, fn := range m.handlers {
		fn(title, content)
	}
	m.Close()
	return nil
}

// Init implements View.
func (m *CreatePostModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Messages are ignored while closed.
func (m *CreatePostModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.setInnerWidth(ws.Width - 8)
		return m, nil
	}
	if m.state != ModalOpen {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.contains(msg.X, msg.Y) {
			return m, m.closeCmd(false)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, m.closeCmd(false)
		case "ctrl+s":
			return m, m.submitCmd()
		case "tab":
			m.focus.Next()
			return m, m.syncFocus()
		case "shift+tab":
			m.focus.Prev()
			return m, m.syncFocus()
		case "enter":
			switch m.focus.Current() {
			case focusTitle:
				m.focus.Set(focusContent)
				return m, m.syncFocus()
			case focusSave:
				return m, m.submitCmd()
			case focusCancel:
				return m, m.closeCmd(false)
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus.Current() {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// View implements View. A closed modal renders nothing.
func (m *CreatePostModal) View() string {
	if m.state != ModalOpen {
		return ""
	}
	var b strings.Builder
	b.WriteString(ModalStyles.Title.Render("Create New Post") + "\n\n")
	b.WriteString(m.label("Title", focusTitle) + "\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(m.label("Content", focusContent) + "\n")
	b.WriteString(m.content.View() + "\n")
	if m.err != nil {
		b.WriteString("\n" + ModalStyles.Error.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Center,
		m.save.View(m.focus.Is(focusSave)),
		" ",
		m.cancel.View(m.focus.Is(focusCancel)),
	) + "\n")
	b.WriteString(ModalStyles.Help.Render("Tab: next  Ctrl+S: save  Esc: cancel"))
	return ModalStyles.Box.Render(b.String())
}

// Bounds returns the screen rectangle the modal occupies when centered with
// lipgloss.Place on the last reported window size.
func (m *CreatePostModal) Bounds() (x, y, w, h int) {
	v := m.View()
	w, h = lipgloss.Width(v), lipgloss.Height(v)
	return centerOffset(m.width, w), centerOffset(m.height, h), w, h
}

func (m *CreatePostModal) contains(px, py int) bool {
	x, y, w, h := m.Bounds()
	return px >= x && px < x+w && py >= y && py < y+h
}

// centerOffset mirrors lipgloss.Place's rounding for centered content.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return int(math.Round(float64(gap) * float64(lipgloss.Center)))
}

func (m *CreatePostModal) label(text, target string) string {
	if m.focus.Is(target) {
		return ModalStyles.LabelFocus.Render(text)
	}
	return ModalStyles.Label.Render(text)
}

func (m *CreatePostModal) setInnerWidth(w int) {
	w = min(max(w, modalMinWidth), modalMaxWidth)
	m.title.Width = w - 1
	m.content.SetWidth(w)
}

// syncFocus moves keyboard focus to the ring's current target.
func (m *CreatePostModal) syncFocus() tea.Cmd {
	m.title.Blur()
	m.content.Blur()
	switch m.focus.Current() {
	case focusTitle:
		return m.title.Focus()
	case focusContent:
		return m.content.Focus()
	}
	return nil
}

func (m *CreatePostModal) submitCmd() tea.Cmd {
	if err := m.Submit(); err != nil {
		return nil
	}
	return m.closeCmd(true)
}

func (m *CreatePostModal) closeCmd(created bool) tea.Cmd {
	if !created {
		m.Close()
	}
	return func() tea.Msg { return ModalClosedMsg{Created: created} }
}
