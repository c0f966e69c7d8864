package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"postboard/internal/fetch"
	"postboard/internal/model"
	"postboard/internal/store"
	"postboard/internal/ui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves fixed collections and counts invalidations.
type fakeSource struct {
	mu          sync.Mutex
	items       []model.Item
	users       []model.User
	invalidated int
	lastLimit   int
}

func (f *fakeSource) Items(_ context.Context, limit int) []model.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	return append([]model.Item(nil), f.items...)
}

func (f *fakeSource) Users(context.Context) []model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.User(nil), f.users...)
}

func (f *fakeSource) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
}

func (f *fakeSource) Wait() {}

func (f *fakeSource) ItemsStats(int) fetch.Stats {
	return fetch.Stats{Successes: 2, CacheHits: 5, LastSuccess: time.Now().Add(-3 * time.Second)}
}

func (f *fakeSource) UsersStats() fetch.Stats {
	return fetch.Stats{Failures: 1, LastError: errors.New("fetch /users: status 500")}
}

func samplePosts() []model.Item {
	one, two := 1, 2
	return []model.Item{
		{ID: 1, Title: "first post", Content: "body one", OwnerID: &one},
		{ID: 2, Title: "second post", Content: "body two", OwnerID: &two},
	}
}

func newTestApp(t *testing.T) (*appModelAdapter, *fakeSource) {
	t.Helper()
	src := &fakeSource{
		items: samplePosts(),
		users: []model.User{{ID: 1, Name: "Leanne Graham", Username: "Bret"}},
	}
	m := NewAppModel(Options{
		Source:        src,
		Store:         store.New(),
		Cards:         []component.Card{{Title: "Card 1", Content: "first"}},
		PostsLimit:    20,
		MarkdownStyle: "notty",
	})
	return m.AsTeaModel().(*appModelAdapter), src
}

// step runs cmd and feeds its message back into the app once.
func step(t *testing.T, a *appModelAdapter, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := a.Update(cmd())
	return next
}

func press(a *appModelAdapter, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

func TestNewAppModel_Defaults(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, PageHome, a.Page)
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, ModalClosed, a.Modal.State())

	out := a.View()
	assert.Contains(t, out, "postboard")
	assert.Contains(t, out, "Home Page")
	assert.Contains(t, out, "Card 1")
	assert.Contains(t, out, "+ Create New Post")
	assert.Contains(t, out, "No posts yet. Create your first post!")
}

func TestApp_PageNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	step(t, a, press(a, "3"))
	assert.Equal(t, PagePosts, a.Page)

	step(t, a, press(a, "tab"))
	assert.Equal(t, PageUsers, a.Page)
	step(t, a, press(a, "tab"))
	assert.Equal(t, PageHome, a.Page, "tab wraps")
	step(t, a, press(a, "shift+tab"))
	assert.Equal(t, PageUsers, a.Page)

	step(t, a, press(a, "2"))
	assert.Equal(t, PageAbout, a.Page)
	assert.Contains(t, a.View(), "About Page")
}

func TestApp_LoadedCollections(t *testing.T) {
	a, src := newTestApp(t)

	step(t, a, loadPostsCmd(context.Background(), src, 20))
	step(t, a, loadUsersCmd(context.Background(), src))
	assert.Equal(t, 20, src.lastLimit)

	a.Page = PagePosts
	out := a.View()
	assert.Contains(t, out, "first post")
	assert.Contains(t, out, "USER ID: 1")

	a.Page = PageUsers
	assert.Contains(t, a.View(), "Leanne Graham")
}

func TestApp_EmptyCollections(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(PostsLoadedMsg{Items: []model.Item{}})
	a.Update(UsersLoadedMsg{Users: []model.User{}})

	a.Page = PagePosts
	assert.Contains(t, a.View(), "No posts found or failed to load data.")
	a.Page = PageUsers
	assert.Contains(t, a.View(), "No users found or failed to load data.")
}

func TestApp_EnterOnPostShowsStatus(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(PostsLoadedMsg{Items: samplePosts()})
	a.Page = PagePosts

	press(a, "down")
	step(t, a, press(a, "enter"))
	assert.Equal(t, "Viewing post #2", a.Status)
	assert.False(t, a.StatusIsError)
	assert.Contains(t, a.View(), "Viewing post #2")
}

func TestApp_CreatePostFlow(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 60})

	// SPC n opens the modal
	press(a, " ")
	assert.True(t, a.KeyHandler.LeaderWaiting)
	step(t, a, press(a, "n"))
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	require.IsType(t, &CreatePostModal{}, top.View)
	assert.Equal(t, ModalOpen, a.Modal.State())
	assert.Contains(t, a.View(), "Create New Post")

	// keys go to the modal, not to the keybind system
	for _, r := range "Hello" {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	press(a, "tab")
	for _, r := range "World" {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	step(t, a, press(a, "ctrl+s"))

	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, ModalClosed, a.Modal.State())
	items := a.Store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, model.Item{ID: 1, Title: "Hello", Content: "World"}, items[0])
	assert.Equal(t, "Created post #1", a.Status)
	assert.Contains(t, a.View(), "Post ID: 1 • User ID: —")
}

func TestApp_CreateButtonOnHome(t *testing.T) {
	a, _ := newTestApp(t)
	step(t, a, press(a, "enter"))
	assert.Equal(t, 1, a.Overlays.Len())
	assert.Equal(t, ModalOpen, a.Modal.State())
}

func TestApp_NKeyOnlyOnHome(t *testing.T) {
	a, _ := newTestApp(t)
	a.Page = PagePosts
	a.Update(PostsLoadedMsg{Items: samplePosts()})
	cmd := press(a, "n")
	if cmd != nil {
		a.Update(cmd())
	}
	assert.Equal(t, 0, a.Overlays.Len())

	a.Page = PageHome
	step(t, a, press(a, "n"))
	assert.Equal(t, 1, a.Overlays.Len())
}

func TestApp_CancelModalLeavesStore(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(ShowCreatePostMsg{})
	for _, r := range "draft" {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	step(t, a, press(a, "esc"))

	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 0, a.Store.Len())
}

func TestApp_InvalidSubmitKeepsModal(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(ShowCreatePostMsg{})
	cmd := press(a, "ctrl+s")
	assert.Nil(t, cmd)
	assert.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, a.View(), "title and content are required")
}

func TestApp_PreconditionErrorInStatus(t *testing.T) {
	a, _ := newTestApp(t)
	a.createPost("bad \xff title", "content")
	assert.True(t, a.StatusIsError)
	assert.Contains(t, a.Status, "Create post")
	assert.Equal(t, 0, a.Store.Len())
}

func TestApp_ShowCreatePostTwiceIsNoop(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(ShowCreatePostMsg{})
	a.Update(ShowCreatePostMsg{})
	assert.Equal(t, 1, a.Overlays.Len())
}

func TestApp_Refresh(t *testing.T) {
	a, src := newTestApp(t)
	_, cmd := a.Update(RefreshMsg{})
	assert.Equal(t, "Refreshing…", a.Status)
	step(t, a, cmd)

	assert.Equal(t, 1, src.invalidated)
	assert.Len(t, a.Posts.Items(), 2)
	assert.Len(t, a.Users.Users(), 1)
	assert.Equal(t, "Refreshed: 2 posts, 1 users", a.Status)
}

func TestApp_TickReloads(t *testing.T) {
	a, _ := newTestApp(t)
	_, cmd := a.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
}

func TestApp_QuitWithoutPosts(t *testing.T) {
	a, _ := newTestApp(t)
	cmd := step(t, a, press(a, "q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitConfirmsWhenPostsWouldBeLost(t *testing.T) {
	a, _ := newTestApp(t)
	a.createPost("keep", "me")

	cmd := step(t, a, press(a, "q"))
	assert.Nil(t, cmd)
	require.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, a.View(), "1 post(s) created this session will be lost.")

	// esc dismisses
	press(a, "esc")
	assert.Equal(t, 0, a.Overlays.Len())

	step(t, a, press(a, "q"))
	cmd = press(a, "y")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_HelpOverlay(t *testing.T) {
	a, _ := newTestApp(t)
	step(t, a, press(a, "?"))
	require.Equal(t, 1, a.Overlays.Len())
	out := a.View()
	assert.Contains(t, out, "Keys: Home")
	assert.Contains(t, out, "New post")

	press(a, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestApp_StatsOverlay(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, " ")
	step(t, a, press(a, "s"))
	require.Equal(t, 1, a.Overlays.Len())
	out := a.View()
	assert.Contains(t, out, "posts (limit 20)")
	assert.Contains(t, out, "2 fetched")
	assert.Contains(t, out, "last error: fetch /users: status 500")
}

func TestApp_StatsUnavailable(t *testing.T) {
	m := NewAppModel(Options{Source: plainSource{}, MarkdownStyle: "notty"})
	a := m.AsTeaModel().(*appModelAdapter)
	a.Update(ShowStatsMsg{})
	assert.Equal(t, 0, a.Overlays.Len())
	assert.True(t, a.StatusIsError)
}

type plainSource struct{}

func (plainSource) Items(context.Context, int) []model.Item { return nil }
func (plainSource) Users(context.Context) []model.User      { return nil }
func (plainSource) Invalidate()                             {}
func (plainSource) Wait()                                   {}

func TestApp_LeaderHintBar(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, " ")
	out := a.View()
	assert.Contains(t, out, "New post")
	assert.Contains(t, out, "Refresh")
	press(a, "esc")
	assert.NotContains(t, a.View(), "Refresh")
}

func TestApp_HeaderClickSwitchesPage(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	_ = a.View() // records tab positions

	var users tabSpan
	for _, tab := range a.tabs {
		if tab.page == PageUsers {
			users = tab
		}
	}
	require.Positive(t, users.end)
	a.Update(tea.MouseMsg{X: users.start + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, PageUsers, a.Page)
}

func TestApp_ResizeReachesClosedModal(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Equal(t, 140, a.Modal.width)

	a.Update(ShowCreatePostMsg{})
	out := a.View()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 40, "overlay is placed on the full screen")
}
