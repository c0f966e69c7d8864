package ui

import (
	"strings"

	"postboard/internal/model"
	"postboard/internal/ui/component"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Empty-state texts, shared with the non-interactive commands.
const (
	EmptyPostsText = "No posts found or failed to load data."
	EmptyUsersText = "No users found or failed to load data."
)

// PostsView lists the fetched items as PostCards. Up/down (or j/k) move
// focus; Enter activates the focused card.
type PostsView struct {
	items   []model.Item
	loading bool
	cursor  int
	spinner spinner.Model
	scroll  scroller
}

var _ View = (*PostsView)(nil)

// NewPostsView creates the page in the loading state.
func NewPostsView() *PostsView {
	return &PostsView{
		loading: true,
		spinner: newSpinner(),
		scroll:  newScroller(),
	}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(component.ColorAccent))
	return s
}

// SetItems replaces the list and leaves the loading state.
func (p *PostsView) SetItems(items []model.Item) {
	p.items = items
	p.loading = false
	p.cursor = min(p.cursor, max(len(items)-1, 0))
	p.refresh()
}

// Items returns the displayed items.
func (p *PostsView) Items() []model.Item { return p.items }

// Loading reports whether no result has arrived yet.
func (p *PostsView) Loading() bool { return p.loading }

// Cursor returns the index of the focused card.
func (p *PostsView) Cursor() int { return p.cursor }

// Init implements View.
func (p *PostsView) Init() tea.Cmd { return p.spinner.Tick }

// Update implements View.
func (p *PostsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.scroll.resize(msg.Width, msg.Height)
		p.refresh()
		return p, nil
	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		p.refresh()
		return p, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			p.cursor = max(p.cursor-1, 0)
		case "down", "j":
			p.cursor = min(p.cursor+1, max(len(p.items)-1, 0))
		case "home", "g":
			p.cursor = 0
		case "end", "G":
			p.cursor = max(len(p.items)-1, 0)
		case "enter":
			if p.cursor < len(p.items) {
				return p, component.PostCard{Post: p.items[p.cursor]}.Activate()
			}
			return p, nil
		default:
			return p, p.scroll.update(msg)
		}
		p.refresh()
		return p, nil
	}
	return p, nil
}

// View implements View.
func (p *PostsView) View() string {
	return p.scroll.view()
}

func (p *PostsView) refresh() {
	w := p.scroll.width()
	var b strings.Builder
	b.WriteString(Styles.Title.Render("All Posts") + "\n\n")
	switch {
	case p.loading:
		b.WriteString(p.spinner.View() + " Loading posts…")
		p.scroll.setContent(b.String())
		return
	case len(p.items) == 0:
		b.WriteString(Styles.Empty.Render(EmptyPostsText))
		p.scroll.setContent(b.String())
		return
	}

	top, height := 0, 0
	lines := 2
	for i, it := range p.items {
		card := component.PostCard{Post: it}.View(w, i == p.cursor)
		h := lipgloss.Height(card)
		if i == p.cursor {
			top, height = lines, h
		}
		b.WriteString(card + "\n")
		lines += h
	}
	p.scroll.setContent(b.String())
	p.scroll.reveal(top, height)
}
