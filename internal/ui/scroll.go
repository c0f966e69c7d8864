package ui

import (
	"postboard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Default page size before the first tea.WindowSizeMsg (tests, warm start).
const (
	defaultPageWidth  = 80
	defaultPageHeight = 20
)

// scroller is a viewport whose content is rebuilt by its owner.
type scroller struct {
	vp viewport.Model
}

func newScroller() scroller {
	return scroller{vp: viewport.New(defaultPageWidth, defaultPageHeight)}
}

func (s *scroller) resize(w, h int) {
	s.vp.Width = max(w, 1)
	s.vp.Height = max(h, 1)
}

func (s *scroller) width() int { return s.vp.Width }

func (s *scroller) setContent(content string) {
	s.vp.SetContent(content)
}

// reveal scrolls the minimum distance that makes lines [top, top+n) visible.
func (s *scroller) reveal(top, n int) {
	switch {
	case top < s.vp.YOffset:
		s.vp.SetYOffset(top)
	case top+n > s.vp.YOffset+s.vp.Height:
		s.vp.SetYOffset(top + n - s.vp.Height)
	}
}

func (s *scroller) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

func (s *scroller) view() string { return s.vp.View() }

// truncateCols shortens s to n terminal columns.
func truncateCols(s string, n int) string {
	return textutil.Truncate(s, max(n, 1))
}
