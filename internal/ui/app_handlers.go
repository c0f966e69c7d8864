package ui

import (
	"fmt"

	"postboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleResize records the screen size, sends overlays the full size and
// pages the area between header and status line.
func (a *appModelAdapter) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	page := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-headerHeight-statusHeight, 1)}
	cmds := []tea.Cmd{a.broadcast(page), a.Overlays.Broadcast(msg)}
	// The modal is not on the stack while closed but must know the size
	// before it opens.
	if top, ok := a.Overlays.Peek(); !ok || top.View != View(a.Modal) {
		a.Modal.Update(msg)
	}
	return a, tea.Batch(cmds...)
}

// handleShowCreatePost opens the modal as the top overlay.
func (a *appModelAdapter) handleShowCreatePost() (tea.Model, tea.Cmd) {
	if a.Modal.State() == ModalOpen {
		return a, nil
	}
	a.Modal.Open()
	a.Overlays.Push(Overlay{View: a.Modal})
	return a, a.Modal.Init()
}

// handleShowHelp pushes the key help overlay for the current page.
func (a *appModelAdapter) handleShowHelp() (tea.Model, tea.Cmd) {
	o := NewHelpOverlay(a.KeyHandler.Registry, a.Page)
	o.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.Overlays.Push(Overlay{View: o, Dismiss: "esc"})
	return a, nil
}

// handleQuit quits, first asking for confirmation when the session holds
// created posts, which are not persisted.
func (a *appModelAdapter) handleQuit() (tea.Model, tea.Cmd) {
	n := a.Store.Len()
	if n == 0 {
		return a, tea.Quit
	}
	label := fmt.Sprintf("%d post(s) created this session will be lost.", n)
	a.Overlays.Push(Overlay{View: NewConfirmModal("Quit postboard?", label, tea.Quit), Dismiss: "esc"})
	return a, nil
}

// handleModalClosed pops the modal overlay.
func (a *appModelAdapter) handleModalClosed(msg ModalClosedMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok && top.View == View(a.Modal) {
		a.Overlays.Pop()
	}
	if !msg.Created && !a.StatusIsError {
		a.setStatus("")
	}
	return a, nil
}

// createPost receives each successful modal submission.
func (a *AppModel) createPost(title, content string) {
	items, err := a.Store.Append(store.Candidate{Title: title, Content: content})
	if err != nil {
		a.Logger.Warn("create post rejected", zap.Error(err))
		a.setError(fmt.Sprintf("Create post: %v", err))
		return
	}
	a.Home.SetItems(items)
	a.Page = PageHome
	a.setStatus(fmt.Sprintf("Created post #%d", items[0].ID))
	a.Logger.Debug("post created", zap.Int("id", items[0].ID), zap.Int("total", len(items)))
}

// handleRefresh revalidates every remote collection.
func (a *appModelAdapter) handleRefresh() (tea.Model, tea.Cmd) {
	if a.Source == nil {
		return a, nil
	}
	a.setStatus("Refreshing…")
	return a, refreshCmd(a.ctx, a.Source, a.postsLimit)
}

// handleRefreshed installs the revalidated collections.
func (a *appModelAdapter) handleRefreshed(msg RefreshedMsg) (tea.Model, tea.Cmd) {
	a.Posts.SetItems(msg.Items)
	a.Users.SetUsers(msg.Users)
	a.setStatus(fmt.Sprintf("Refreshed: %d posts, %d users", len(msg.Items), len(msg.Users)))
	return a, nil
}

// handleTick re-reads both collections through the cache and schedules the
// next tick.
func (a *appModelAdapter) handleTick() (tea.Model, tea.Cmd) {
	if a.Source == nil {
		return a, tickCmd(a.revalidate)
	}
	return a, tea.Batch(
		loadPostsCmd(a.ctx, a.Source, a.postsLimit),
		loadUsersCmd(a.ctx, a.Source),
		tickCmd(a.revalidate),
	)
}

// handleKey routes a key to the top overlay, the keybind system or the
// current page, in that order.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	if consumed, cmd := a.KeyHandler.Handle(msg, a.Page); consumed {
		return a, cmd
	}
	_, cmd := a.currentView().Update(msg)
	return a, cmd
}

// handleMouse routes mouse events to the top overlay, or switches page on a
// left click in the header.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
		for _, t := range a.tabs {
			if msg.X >= t.start && msg.X < t.end {
				a.Page = t.page
				return a, nil
			}
		}
		return a, nil
	}
	_, cmd := a.currentView().Update(msg)
	return a, cmd
}

// handleShowStats pushes the fetch stats overlay when the source keeps
// stats.
func (a *appModelAdapter) handleShowStats() (tea.Model, tea.Cmd) {
	src, ok := a.Source.(StatsSource)
	if !ok {
		a.setError("Fetch stats unavailable")
		return a, nil
	}
	o := NewStatsOverlay(src, a.postsLimit)
	o.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.Overlays.Push(Overlay{View: o, Dismiss: "esc"})
	return a, nil
}
