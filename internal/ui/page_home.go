package ui

import (
	"strings"

	"postboard/internal/model"
	"postboard/internal/ui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HomeView shows the featured cards, the create button and the posts the
// user created this session.
type HomeView struct {
	cards  []component.Card
	items  []model.Item
	create component.Button
	scroll scroller
}

var _ View = (*HomeView)(nil)

// NewHomeView creates the home page.
func NewHomeView(cards []component.Card) *HomeView {
	h := &HomeView{
		cards: cards,
		create: component.MustButton("+ Create New Post", component.ButtonConfig{
			Size:       component.SizeLarge,
			OnActivate: func() tea.Msg { return ShowCreatePostMsg{} },
		}),
		scroll: newScroller(),
	}
	h.refresh()
	return h
}

// SetItems replaces the user post list, newest first.
func (h *HomeView) SetItems(items []model.Item) {
	h.items = items
	h.refresh()
}

// Items returns the displayed user posts.
func (h *HomeView) Items() []model.Item { return h.items }

// Init implements View.
func (h *HomeView) Init() tea.Cmd { return nil }

// Update implements View. Enter activates the create button; other keys
// scroll.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.scroll.resize(msg.Width, msg.Height)
		h.refresh()
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return h, h.create.Activate()
		}
		return h, h.scroll.update(msg)
	}
	return h, nil
}

// View implements View.
func (h *HomeView) View() string {
	return h.scroll.view()
}

func (h *HomeView) refresh() {
	w := h.scroll.width()
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Home Page") + "\n")
	b.WriteString(Styles.Subtitle.Render("Create and manage your posts") + "\n")

	if len(h.cards) > 0 {
		b.WriteString(h.renderCards(w) + "\n")
	}
	b.WriteString(h.create.View(true) + "\n")

	b.WriteString(Styles.Section.Render("Your Posts") + "\n")
	if len(h.items) == 0 {
		b.WriteString(Styles.Empty.Render("No posts yet. Create your first post!"))
	}
	for _, it := range h.items {
		b.WriteString(component.ItemCard{Item: it}.View(w) + "\n")
	}
	h.scroll.setContent(b.String())
}

// renderCards lays the featured cards out side by side when they fit and
// stacked otherwise.
func (h *HomeView) renderCards(w int) string {
	n := len(h.cards)
	cardW := (w - (n - 1)) / n
	if cardW < 24 {
		out := make([]string, n)
		for i, c := range h.cards {
			out[i] = c.View(w)
		}
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}
	out := make([]string, 0, 2*n-1)
	for i, c := range h.cards {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c.View(cardW))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}
