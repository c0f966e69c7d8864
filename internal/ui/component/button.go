package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ButtonConfig is the interactive component's configuration. The zero value
// is a medium, rounded-md, primary, enabled button with no handler.
type ButtonConfig struct {
	Size     Size
	Shape    Shape
	Variant  Variant
	Disabled bool
	// OnActivate produces the activation message. Nil means activation is
	// acknowledged by nobody.
	OnActivate func() tea.Msg
}

// ParseButtonConfig builds a config from textual names as used in tables
// and config files. Empty names select defaults; unknown names are errors.
func ParseButtonConfig(size, shape, variant string, disabled bool) (ButtonConfig, error) {
	s, err := ParseSize(size)
	if err != nil {
		return ButtonConfig{}, err
	}
	sh, err := ParseShape(shape)
	if err != nil {
		return ButtonConfig{}, err
	}
	v, err := ParseVariant(variant)
	if err != nil {
		return ButtonConfig{}, err
	}
	return ButtonConfig{Size: s, Shape: sh, Variant: v, Disabled: disabled}, nil
}

// Validate reports the first field holding an out-of-set value.
func (c ButtonConfig) Validate() error {
	switch {
	case !c.Size.Valid():
		return fmt.Errorf("%w: size %d", ErrInvalidConfig, int(c.Size))
	case !c.Shape.Valid():
		return fmt.Errorf("%w: shape %d", ErrInvalidConfig, int(c.Shape))
	case !c.Variant.Valid():
		return fmt.Errorf("%w: variant %d", ErrInvalidConfig, int(c.Variant))
	}
	return nil
}

// Button is a labelled, configurable, stateless button.
type Button struct {
	label string
	cfg   ButtonConfig
}

// NewButton validates cfg and returns the button.
func NewButton(label string, cfg ButtonConfig) (Button, error) {
	if err := cfg.Validate(); err != nil {
		return Button{}, fmt.Errorf("button %q: %w", label, err)
	}
	return Button{label: label, cfg: cfg}, nil
}

// MustButton is NewButton for static configurations; it panics on error.
func MustButton(label string, cfg ButtonConfig) Button {
	b, err := NewButton(label, cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// Label returns the button text.
func (b Button) Label() string { return b.label }

// Config returns the button configuration.
func (b Button) Config() ButtonConfig { return b.cfg }

// WithHandler returns a copy of b that activates with fn.
func (b Button) WithHandler(fn func() tea.Msg) Button {
	b.cfg.OnActivate = fn
	return b
}

// Activate returns the activation command, or nil when the button is
// disabled or has no handler.
func (b Button) Activate() tea.Cmd {
	if b.cfg.Disabled || b.cfg.OnActivate == nil {
		return nil
	}
	return b.cfg.OnActivate
}

// View renders the button. Focus is ignored for disabled buttons.
func (b Button) View(focused bool) string {
	return b.Style(focused).Render(b.label)
}

// Style returns the visual profile for the button's configuration.
func (b Button) Style(focused bool) lipgloss.Style {
	pad := sizeProfiles[b.cfg.Size]
	colors := variantProfiles[b.cfg.Variant]

	s := lipgloss.NewStyle().
		Border(shapeBorders[b.cfg.Shape]).
		Padding(pad.vertical, pad.horizontal).
		Bold(pad.bold)

	if b.cfg.Disabled {
		return s.
			Foreground(lipgloss.Color(ColorMuted)).
			BorderForeground(lipgloss.Color(ColorDim)).
			Faint(true)
	}

	s = s.Foreground(lipgloss.Color(colors.fg)).
		BorderForeground(lipgloss.Color(colors.border))
	if colors.bg != "" {
		s = s.Background(lipgloss.Color(colors.bg))
	}
	if focused {
		s = s.BorderForeground(lipgloss.Color(ColorHighlight)).Underline(true)
	}
	return s
}

type sizeProfile struct {
	vertical   int
	horizontal int
	bold       bool
}

type variantProfile struct {
	fg     string
	bg     string
	border string
}

var sizeProfiles = [...]sizeProfile{
	SizeSmall:  {vertical: 0, horizontal: 1},
	SizeMedium: {vertical: 0, horizontal: 2},
	SizeLarge:  {vertical: 1, horizontal: 3, bold: true},
}

// pillBorder approximates fully rounded ends.
var pillBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "(",
	Right:       ")",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

var shapeBorders = [...]lipgloss.Border{
	ShapeRoundedSM:   lipgloss.NormalBorder(),
	ShapeRoundedMD:   lipgloss.RoundedBorder(),
	ShapeRoundedFull: pillBorder,
}

var variantProfiles = [...]variantProfile{
	VariantPrimary:   {fg: ColorWhite, bg: ColorBlue, border: ColorBlue},
	VariantSecondary: {fg: ColorWhite, bg: ColorGray, border: ColorGray},
	VariantOutline:   {fg: ColorBlue, border: ColorBlue},
	VariantDanger:    {fg: ColorWhite, bg: ColorRed, border: ColorRed},
}

// Build fails here when a profile table and its enumeration disagree in length.
var (
	_ = [1]struct{}{}[len(sizeProfiles)-int(numSizes)]
	_ = [1]struct{}{}[len(shapeBorders)-int(numShapes)]
	_ = [1]struct{}{}[len(variantProfiles)-int(numVariants)]
)
