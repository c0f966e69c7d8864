package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a view drawn above the current page. Input goes to the topmost
// overlay only.
type Overlay struct {
	View View
	// Dismiss is the key that pops the overlay without consulting the view.
	// Empty means the view closes itself.
	Dismiss string
}

// IsDismissKey reports whether key pops this overlay.
func (o Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack is a LIFO of overlays.
type OverlayStack struct {
	stack []Overlay
}

// Push adds o on top.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of overlays.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop routes msg to the top overlay. The bool is false when the stack
// is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}

// Broadcast sends msg to every overlay, bottom first. Used for messages such
// as tea.WindowSizeMsg that all overlays must see.
func (s *OverlayStack) Broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.stack))
	for i := range s.stack {
		v, cmd := s.stack[i].View.Update(msg)
		s.stack[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
