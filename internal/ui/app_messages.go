package ui

import (
	"time"

	"postboard/internal/model"
)

// SwitchPageMsg moves the app to Page.
type SwitchPageMsg struct {
	Page Page
}

// ShowCreatePostMsg opens the create-post modal (SPC n or the Home button).
type ShowCreatePostMsg struct{}

// ShowHelpMsg opens the key help overlay for the current page.
type ShowHelpMsg struct{}

// ShowStatsMsg opens the fetch stats overlay (SPC s).
type ShowStatsMsg struct{}

// ModalClosedMsg is emitted by CreatePostModal after it closes. Created is
// true when the close was a successful submit.
type ModalClosedMsg struct {
	Created bool
}

// RefreshMsg forces every remote collection to revalidate (SPC r).
type RefreshMsg struct{}

// PostsLoadedMsg carries the items read from the fetcher.
type PostsLoadedMsg struct {
	Items []model.Item
}

// UsersLoadedMsg carries the users read from the fetcher.
type UsersLoadedMsg struct {
	Users []model.User
}

// RefreshedMsg carries both collections after a forced revalidation.
type RefreshedMsg struct {
	Items []model.Item
	Users []model.User
}

// tickMsg triggers the periodic re-read of remote collections.
type tickMsg time.Time
