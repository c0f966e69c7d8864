package ui

import (
	"context"
	"sync"
	"time"

	"postboard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Source supplies the remote collections. Reads never fail; an unavailable
// collection is empty. *fetch.Fetcher implements it.
type Source interface {
	Items(ctx context.Context, limit int) []model.Item
	Users(ctx context.Context) []model.User
	// Invalidate marks every collection stale.
	Invalidate()
	// Wait blocks until background revalidation has finished.
	Wait()
}

// loadPostsCmd reads the items collection off the update loop.
func loadPostsCmd(ctx context.Context, src Source, limit int) tea.Cmd {
	return func() tea.Msg {
		return PostsLoadedMsg{Items: src.Items(ctx, limit)}
	}
}

// loadUsersCmd reads the users collection off the update loop.
func loadUsersCmd(ctx context.Context, src Source) tea.Cmd {
	return func() tea.Msg {
		return UsersLoadedMsg{Users: src.Users(ctx)}
	}
}

// refreshCmd invalidates the source, waits for the background revalidation
// it triggers and reads both collections again. A failed revalidation leaves
// the previous values in place.
func refreshCmd(ctx context.Context, src Source, limit int) tea.Cmd {
	return func() tea.Msg {
		src.Invalidate()
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); src.Items(ctx, limit) }()
		go func() { defer wg.Done(); src.Users(ctx) }()
		wg.Wait()
		src.Wait()
		return RefreshedMsg{Items: src.Items(ctx, limit), Users: src.Users(ctx)}
	}
}

// tickCmd schedules the next periodic re-read.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
