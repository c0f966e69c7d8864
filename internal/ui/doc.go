// Package ui is the postboard terminal interface, built on Bubble Tea.
//
// Core abstractions:
//   - View: a page or overlay with its own Init/Update/View cycle
//   - AppModel: the root model; switches pages and owns the overlay stack
//   - OverlayStack: modal views drawn above the page, topmost gets input
//   - KeybindRegistry/KeyHandler: single keys and SPC-led sequences,
//     optionally limited to some pages
//   - CreatePostModal: the Closed/Open creation form feeding the ListStore
//
// Remote data arrives through a Source inside tea.Cmds, never on the update
// loop.
package ui
