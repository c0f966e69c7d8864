package ui

// FocusRing tracks which of a fixed set of targets has focus and rotates
// through them in order.
type FocusRing struct {
	order   []string
	current int
}

// NewFocusRing creates a ring focused on the first target.
func NewFocusRing(order ...string) *FocusRing {
	return &FocusRing{order: order}
}

// Current returns the focused target, or "" for an empty ring.
func (f *FocusRing) Current() string {
	if len(f.order) == 0 {
		return ""
	}
	return f.order[f.current]
}

// Is reports whether id has focus.
func (f *FocusRing) Is(id string) bool {
	return f.Current() == id
}

// Next moves focus forward, wrapping, and returns the new target.
func (f *FocusRing) Next() string {
	return f.move(1)
}

// Prev moves focus backward, wrapping, and returns the new target.
func (f *FocusRing) Prev() string {
	return f.move(-1)
}

// Set focuses id. It returns false when id is not in the ring.
func (f *FocusRing) Set(id string) bool {
	for i, o := range f.order {
		if o == id {
			f.jump(i)
			return true
		}
	}
	return false
}

// Reset focuses the first target.
func (f *FocusRing) Reset() {
	f.jump(0)
}

func (f *FocusRing) move(delta int) string {
	n := len(f.order)
	if n == 0 {
		return ""
	}
	f.jump(((f.current+delta)%n + n) % n)
	return f.Current()
}

func (f *FocusRing) jump(i int) {
	if len(f.order) == 0 {
		return
	}
	f.current = i
}
