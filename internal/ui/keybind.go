package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is the canonical spelling of the leader key in sequences.
const leaderSeq = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	pages []Page // empty means every page
}

// KeybindRegistry maps key sequences to commands. Sequences use
// spacemacs-style notation: "q", "ctrl+c", "SPC n" (space then n).
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq on every page, replacing any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindOn(seq, cmd, desc)
}

// BindOn registers seq for the listed pages only (all pages when none are
// given).
func (r *KeybindRegistry) BindOn(seq string, cmd tea.Cmd, desc string, pages ...Page) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, pages: pages}
}

// Lookup returns the command bound to seq on page, or nil.
func (r *KeybindRegistry) Lookup(seq string, page Page) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(page) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next keys available after currentSeq on page,
// keyed by the key and valued by its description. An empty currentSeq means
// "just after the leader".
func (r *KeybindRegistry) LeaderHints(currentSeq string, page Page) map[string]string {
	prefix := leaderSeq + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.appliesTo(page) {
			continue
		}
		next, _, more := strings.Cut(strings.TrimPrefix(seq, prefix), " ")
		switch {
		case more:
			out[next] = next + "…"
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

// Help returns one key.Binding per described binding on page, sorted by
// sequence, for rendering with bubbles/help.
func (r *KeybindRegistry) Help(page Page) []key.Binding {
	seqs := make([]string, 0, len(r.bindings))
	for seq, b := range r.bindings {
		if b.cmd != nil && b.desc != "" && b.appliesTo(page) {
			seqs = append(seqs, seq)
		}
	}
	sort.Strings(seqs)
	out := make([]key.Binding, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, key.NewBinding(key.WithKeys(seq), key.WithHelp(seq, r.bindings[seq].desc)))
	}
	return out
}

func (b binding) appliesTo(page Page) bool {
	return len(b.pages) == 0 || slices.Contains(b.pages, page)
}

// normalizeSeq converts tea key strings to canonical sequence form.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	if strings.HasPrefix(seq, " ") && len(parts) == 0 {
		return leaderSeq
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a single tea key string to a sequence part.
// Bubble Tea reports the space bar as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	// Buffer holds the sequence typed since the leader, leader included.
	Buffer []string
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes msg for page. consumed reports whether the key belonged to
// the keybind system and must not reach the page; cmd is the bound command.
func (h *KeyHandler) Handle(msg tea.KeyMsg, page Page) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if part == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if !h.LeaderWaiting {
		if part == leaderSeq {
			h.LeaderWaiting = true
			h.Buffer = []string{leaderSeq}
			return true, nil
		}
		if c := h.Registry.Lookup(part, page); c != nil {
			return true, c
		}
		return false, nil
	}

	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq, page); c != nil {
		h.reset()
		return true, c
	}
	if h.Registry.HasPrefix(seq) {
		return true, nil
	}
	h.reset()
	return true, nil
}

// Sequence returns the pending leader sequence, e.g. "SPC".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}
