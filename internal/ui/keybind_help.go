package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// newHelpModel returns a bubbles/help model in the app palette.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Key
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = Styles.Key
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp renders the transient hint bar shown while a leader
// sequence is pending.
func RenderKeybindHelp(h *KeyHandler, page Page) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.Sequence()
	hints := h.Registry.LeaderHints(seq, page)
	if len(hints) == 0 {
		return ""
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	return Styles.HintBox.Render(Styles.Muted.Render(seq) + " " + newHelpModel().ShortHelpView(bindings))
}

// HelpOverlay lists every binding available on a page. It is dismissed by
// the overlay's dismiss key.
type HelpOverlay struct {
	registry *KeybindRegistry
	page     Page
	help     help.Model
}

var _ View = (*HelpOverlay)(nil)

// NewHelpOverlay creates the overlay for page.
func NewHelpOverlay(reg *KeybindRegistry, page Page) *HelpOverlay {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpOverlay{registry: reg, page: page, help: h}
}

// Init implements View.
func (o *HelpOverlay) Init() tea.Cmd { return nil }

// Update implements View.
func (o *HelpOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		o.help.Width = msg.Width
	}
	return o, nil
}

// View implements View.
func (o *HelpOverlay) View() string {
	bindings := o.registry.Help(o.page)
	cols := make([][]key.Binding, 0, 2)
	for i := 0; i < len(bindings); i += 8 {
		cols = append(cols, bindings[i:min(i+8, len(bindings))])
	}
	content := ModalStyles.Title.Render("Keys: "+o.page.String()) + "\n\n" +
		o.help.FullHelpView(cols) + "\n\n" +
		ModalStyles.Help.Render("Esc: close")
	return ModalStyles.Box.Render(content)
}
