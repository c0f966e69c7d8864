package ui

import (
	"strings"

	"postboard/internal/model"
	"postboard/internal/ui/component"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// usersGridMinWidth is the page width from which users are shown two per row.
const usersGridMinWidth = 100

// UsersView lists the fetched users as UserCards.
type UsersView struct {
	users   []model.User
	loading bool
	spinner spinner.Model
	scroll  scroller
}

var _ View = (*UsersView)(nil)

// NewUsersView creates the page in the loading state.
func NewUsersView() *UsersView {
	return &UsersView{
		loading: true,
		spinner: newSpinner(),
		scroll:  newScroller(),
	}
}

// SetUsers replaces the list and leaves the loading state.
func (u *UsersView) SetUsers(users []model.User) {
	u.users = users
	u.loading = false
	u.refresh()
}

// Users returns the displayed users.
func (u *UsersView) Users() []model.User { return u.users }

// Init implements View.
func (u *UsersView) Init() tea.Cmd { return u.spinner.Tick }

// Update implements View. Keys scroll the list.
func (u *UsersView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		u.scroll.resize(msg.Width, msg.Height)
		u.refresh()
		return u, nil
	case spinner.TickMsg:
		if !u.loading {
			return u, nil
		}
		var cmd tea.Cmd
		u.spinner, cmd = u.spinner.Update(msg)
		u.refresh()
		return u, cmd
	case tea.KeyMsg, tea.MouseMsg:
		return u, u.scroll.update(msg)
	}
	return u, nil
}

// View implements View.
func (u *UsersView) View() string {
	return u.scroll.view()
}

func (u *UsersView) refresh() {
	w := u.scroll.width()
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Application Users") + "\n\n")
	switch {
	case u.loading:
		b.WriteString(u.spinner.View() + " Loading users…")
	case len(u.users) == 0:
		b.WriteString(Styles.Empty.Render(EmptyUsersText))
	default:
		cols := 1
		if w >= usersGridMinWidth {
			cols = 2
		}
		cardW := (w - (cols - 1)) / cols
		for i := 0; i < len(u.users); i += cols {
			row := make([]string, 0, 2*cols-1)
			for j := i; j < min(i+cols, len(u.users)); j++ {
				if j > i {
					row = append(row, " ")
				}
				row = append(row, component.UserCard{User: u.users[j]}.View(cardW))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
		}
	}
	u.scroll.setContent(b.String())
}
