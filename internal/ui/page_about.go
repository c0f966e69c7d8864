package ui

import (
	"fmt"
	"strings"

	"postboard/internal/ui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// galleryConfigs is the size/shape/variant showcase grid, three per row.
var galleryConfigs = []struct {
	size, shape, variant string
}{
	{"small", "rounded-sm", "primary"},
	{"small", "rounded-md", "secondary"},
	{"small", "rounded-full", "outline"},
	{"medium", "rounded-sm", "danger"},
	{"medium", "rounded-md", "primary"},
	{"medium", "rounded-full", "secondary"},
	{"large", "rounded-sm", "outline"},
	{"large", "rounded-md", "danger"},
	{"large", "rounded-full", "primary"},
}

const galleryColumns = 3

const usageNotes = `## How to use the Button component

**Configuration**

- ` + "`size`" + `: small, medium, large
- ` + "`shape`" + `: rounded-sm, rounded-md, rounded-full
- ` + "`variant`" + `: primary, secondary, outline, danger
- ` + "`disabled`" + `: disabled buttons never activate

**Example**

` + "```go" + `
btn, err := component.NewButton("Click Me", component.ButtonConfig{
	Size:       component.SizeLarge,
	Shape:      component.ShapeRoundedFull,
	OnActivate: func() tea.Msg { return clicked{} },
})
` + "```" + `
`

// galleryClickMsg is produced by a gallery button's activation.
type galleryClickMsg struct {
	key string
}

type galleryEntry struct {
	key    string
	title  string
	button component.Button
}

// AboutView is the component gallery: nine configurations with click
// counters, a row of special cases and rendered usage notes.
type AboutView struct {
	gallery  []galleryEntry
	specials []component.Button
	counts   map[string]int
	cursor   int // index over gallery then specials

	markdownStyle string
	notes         string
	scroll        scroller
}

var _ View = (*AboutView)(nil)

// NewAboutView creates the gallery. markdownStyle names a glamour style
// ("dark", "light", "notty"); empty means "dark".
func NewAboutView(markdownStyle string) *AboutView {
	if markdownStyle == "" {
		markdownStyle = "dark"
	}
	a := &AboutView{
		counts:        make(map[string]int),
		markdownStyle: markdownStyle,
		scroll:        newScroller(),
	}
	for _, c := range galleryConfigs {
		cfg, err := component.ParseButtonConfig(c.size, c.shape, c.variant, false)
		if err != nil {
			panic(err)
		}
		key := fmt.Sprintf("btn-%s-%s-%s", c.size, c.shape, c.variant)
		cfg.OnActivate = func() tea.Msg { return galleryClickMsg{key: key} }
		a.gallery = append(a.gallery, galleryEntry{
			key:    key,
			title:  fmt.Sprintf("%s • %s • %s", c.size, strings.TrimPrefix(c.shape, "rounded-"), c.variant),
			button: component.MustButton("Click Me", cfg),
		})
	}
	a.specials = []component.Button{
		component.MustButton("Disabled Button", component.ButtonConfig{Disabled: true}),
		component.MustButton("Custom Styled", component.ButtonConfig{
			Size: component.SizeLarge, Shape: component.ShapeRoundedFull, Variant: component.VariantOutline,
		}),
		component.MustButton("Submit Form", component.ButtonConfig{Variant: component.VariantSecondary}),
		component.MustButton("Delete", component.ButtonConfig{
			Size: component.SizeSmall, Shape: component.ShapeRoundedFull, Variant: component.VariantDanger,
		}),
	}
	a.renderNotes()
	a.refresh()
	return a
}

// Count returns how many times the gallery button with key was activated.
func (a *AboutView) Count(key string) int { return a.counts[key] }

// Focused returns the label and configuration of the focused button.
func (a *AboutView) Focused() component.Button { return a.button(a.cursor) }

// Init implements View.
func (a *AboutView) Init() tea.Cmd { return nil }

// Update implements View. Arrow keys (or hjkl) move focus through the
// gallery and the special row; Enter activates the focused button.
func (a *AboutView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.scroll.resize(msg.Width, msg.Height)
		a.renderNotes()
		a.refresh()
		return a, nil
	case galleryClickMsg:
		a.counts[msg.key]++
		a.refresh()
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			a.move(-1)
		case "right", "l":
			a.move(1)
		case "up", "k":
			a.move(-galleryColumns)
		case "down", "j":
			a.move(galleryColumns)
		case "enter":
			return a, a.button(a.cursor).Activate()
		default:
			return a, a.scroll.update(msg)
		}
		a.refresh()
		return a, nil
	}
	return a, nil
}

// View implements View.
func (a *AboutView) View() string {
	return a.scroll.view()
}

func (a *AboutView) total() int { return len(a.gallery) + len(a.specials) }

func (a *AboutView) button(i int) component.Button {
	if i < len(a.gallery) {
		return a.gallery[i].button
	}
	return a.specials[i-len(a.gallery)]
}

func (a *AboutView) move(delta int) {
	a.cursor = min(max(a.cursor+delta, 0), a.total()-1)
}

func (a *AboutView) renderNotes() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(a.markdownStyle),
		glamour.WithWordWrap(max(a.scroll.width()-4, 20)),
	)
	if err != nil {
		a.notes = usageNotes
		return
	}
	out, err := r.Render(usageNotes)
	if err != nil {
		a.notes = usageNotes
		return
	}
	a.notes = out
}

func (a *AboutView) refresh() {
	w := a.scroll.width()
	var b strings.Builder
	b.WriteString(Styles.Title.Render("About Page") + "\n")
	b.WriteString(Styles.Subtitle.Render("This page demonstrates the reusable Button component with different sizes, shapes, and variants.") + "\n")

	cellW := max((w-galleryColumns)/galleryColumns, 22)
	cell := lipgloss.NewStyle().
		Width(cellW - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(component.ColorDim)).
		Align(lipgloss.Center)

	focusTop, focusHeight := 0, 0
	lines := lipgloss.Height(b.String()) - 1
	for row := 0; row*galleryColumns < len(a.gallery); row++ {
		cells := make([]string, 0, galleryColumns)
		for col := 0; col < galleryColumns; col++ {
			i := row*galleryColumns + col
			if i >= len(a.gallery) {
				break
			}
			e := a.gallery[i]
			body := Styles.Normal.Bold(true).Render(e.title) + "\n\n" +
				e.button.View(i == a.cursor) + "\n\n" +
				Styles.Muted.Render("Clicks: ") + Styles.Counter.Render(fmt.Sprint(a.counts[e.key]))
			if col > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, cell.Render(body))
		}
		rowView := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if a.cursor/galleryColumns == row && a.cursor < len(a.gallery) {
			focusTop, focusHeight = lines, lipgloss.Height(rowView)
		}
		b.WriteString(rowView + "\n")
		lines += lipgloss.Height(rowView)
	}

	b.WriteString(Styles.Section.Render("Special Button Examples") + "\n")
	lines += 2
	specials := make([]string, 0, 2*len(a.specials))
	for i, btn := range a.specials {
		if i > 0 {
			specials = append(specials, " ")
		}
		specials = append(specials, btn.View(len(a.gallery)+i == a.cursor))
	}
	specialRow := lipgloss.JoinHorizontal(lipgloss.Center, specials...)
	if a.cursor >= len(a.gallery) {
		focusTop, focusHeight = lines, lipgloss.Height(specialRow)
	}
	b.WriteString(specialRow + "\n")
	b.WriteString(a.notes)

	a.scroll.setContent(b.String())
	a.scroll.reveal(focusTop, focusHeight)
}
