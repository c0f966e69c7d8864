package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"postboard/internal/store"
	"postboard/internal/ui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Rows taken by the header (bar plus margin) and the status line.
const (
	headerHeight = 2
	statusHeight = 1
)

// DefaultRevalidate is the period of the background re-read when Options
// leaves it unset.
const DefaultRevalidate = 60 * time.Second

// Options configures NewAppModel.
type Options struct {
	// Context bounds every fetch issued by the app. Nil means Background.
	Context context.Context
	Source  Source
	Store   *store.ListStore
	// Cards are the featured cards on the home page.
	Cards      []component.Card
	PostsLimit int
	Revalidate time.Duration
	Logger     *zap.Logger
	// MarkdownStyle is the glamour style for the about page notes.
	MarkdownStyle string
	// Brand is the product name in the header.
	Brand string
}

// AppModel is the root model. It owns the pages, the overlay stack and the
// key handler, and switches between pages.
type AppModel struct {
	Page  Page
	Home  *HomeView
	About *AboutView
	Posts *PostsView
	Users *UsersView

	Modal      *CreatePostModal
	Overlays   OverlayStack
	KeyHandler *KeyHandler

	Store  *store.ListStore
	Source Source
	Logger *zap.Logger

	Status        string
	StatusIsError bool

	ctx        context.Context
	postsLimit int
	revalidate time.Duration
	brand      string
	width      int
	height     int
	tabs       []tabSpan // header hit areas from the last render
}

// tabSpan is the column range [start, end) of a header entry.
type tabSpan struct {
	page       Page
	start, end int
}

// Ensure the adapter satisfies tea.Model.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model.
func NewAppModel(opts Options) *AppModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Store == nil {
		opts.Store = store.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Revalidate <= 0 {
		opts.Revalidate = DefaultRevalidate
	}
	if opts.Brand == "" {
		opts.Brand = "postboard"
	}

	m := &AppModel{
		Page:       PageHome,
		Home:       NewHomeView(opts.Cards),
		About:      NewAboutView(opts.MarkdownStyle),
		Posts:      NewPostsView(),
		Users:      NewUsersView(),
		Modal:      NewCreatePostModal(),
		KeyHandler: NewKeyHandler(newRegistry()),
		Store:      opts.Store,
		Source:     opts.Source,
		Logger:     opts.Logger,
		ctx:        opts.Context,
		postsLimit: opts.PostsLimit,
		revalidate: opts.Revalidate,
		brand:      opts.Brand,
	}
	m.Home.SetItems(m.Store.Items())
	m.Modal.OnCreate(m.createPost)
	return m
}

// newRegistry binds the global keys.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	quit := func() tea.Msg { return quitMsg{} }
	reg.Bind("q", quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit now")
	reg.Bind("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.Bind("tab", func() tea.Msg { return cyclePageMsg{delta: 1} }, "Next page")
	reg.Bind("shift+tab", func() tea.Msg { return cyclePageMsg{delta: -1} }, "Previous page")
	for i, p := range Pages {
		reg.Bind(fmt.Sprint(i+1), func() tea.Msg { return SwitchPageMsg{Page: p} }, p.String())
	}
	reg.BindOn("n", func() tea.Msg { return ShowCreatePostMsg{} }, "New post", PageHome)

	reg.Bind("SPC n", func() tea.Msg { return ShowCreatePostMsg{} }, "New post")
	reg.Bind("SPC r", func() tea.Msg { return RefreshMsg{} }, "Refresh")
	reg.Bind("SPC s", func() tea.Msg { return ShowStatsMsg{} }, "Fetch stats")
	reg.Bind("SPC q", quit, "Quit")
	return reg
}

// quitMsg asks to leave; it is confirmed when created posts would be lost.
type quitMsg struct{}

// cyclePageMsg moves to the next (delta 1) or previous (delta -1) page.
type cyclePageMsg struct {
	delta int
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.Posts.Init(), a.Users.Init(), tickCmd(a.revalidate)}
	if a.Source != nil {
		cmds = append(cmds,
			loadPostsCmd(a.ctx, a.Source, a.postsLimit),
			loadUsersCmd(a.ctx, a.Source),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case SwitchPageMsg:
		a.Page = msg.Page
		return a, nil
	case cyclePageMsg:
		if msg.delta < 0 {
			a.Page = a.Page.Prev()
		} else {
			a.Page = a.Page.Next()
		}
		return a, nil
	case ShowCreatePostMsg:
		return a.handleShowCreatePost()
	case ShowHelpMsg:
		return a.handleShowHelp()
	case ShowStatsMsg:
		return a.handleShowStats()
	case quitMsg:
		return a.handleQuit()
	case ModalClosedMsg:
		return a.handleModalClosed(msg)
	case RefreshMsg:
		return a.handleRefresh()
	case RefreshedMsg:
		return a.handleRefreshed(msg)
	case PostsLoadedMsg:
		a.Posts.SetItems(msg.Items)
		return a, nil
	case UsersLoadedMsg:
		a.Users.SetUsers(msg.Users)
		return a, nil
	case tickMsg:
		return a.handleTick()
	case component.PostActivatedMsg:
		a.setStatus(fmt.Sprintf("Viewing post #%d", msg.ID))
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	// Everything else (spinner ticks, page-private messages) goes to the
	// pages; each ignores what it does not own.
	return a, a.broadcast(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width == 0 || a.height == 0 {
			return top.View.View()
		}
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	return a.renderHeader() + "\n" + a.currentView().View() + "\n" + a.renderStatus()
}

func (a *appModelAdapter) currentView() View {
	switch a.Page {
	case PageAbout:
		return a.About
	case PagePosts:
		return a.Posts
	case PageUsers:
		return a.Users
	default:
		return a.Home
	}
}

func (a *appModelAdapter) broadcast(msg tea.Msg) tea.Cmd {
	views := []View{a.Home, a.About, a.Posts, a.Users}
	cmds := make([]tea.Cmd, 0, len(views))
	for _, v := range views {
		_, cmd := v.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) setStatus(s string) {
	a.Status = s
	a.StatusIsError = false
}

func (a *AppModel) setError(s string) {
	a.Status = s
	a.StatusIsError = true
}

func (a *appModelAdapter) renderHeader() string {
	var b strings.Builder
	brand := Styles.Brand.Render(a.brand)
	b.WriteString(brand)
	col := lipgloss.Width(brand)
	a.tabs = a.tabs[:0]
	for i, p := range Pages {
		style := Styles.Tab
		if p == a.Page {
			style = Styles.TabActive
		}
		tab := style.Render(fmt.Sprintf("%d %s", i+1, p))
		w := lipgloss.Width(tab)
		a.tabs = append(a.tabs, tabSpan{page: p, start: col, end: col + w})
		b.WriteString(tab)
		col += w
	}
	return Styles.Header.Width(max(a.width, col)).Render(b.String())
}

func (a *appModelAdapter) renderStatus() string {
	if hint := RenderKeybindHelp(a.KeyHandler, a.Page); hint != "" {
		return hint
	}
	right := Styles.Muted.Render("SPC commands • ? help")
	avail := max(a.width-lipgloss.Width(right)-1, 20)
	left := ""
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.StatusError
		}
		left = style.Render(truncateCols(a.Status, avail))
	}
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
