package component

import (
	"fmt"
	"strings"

	"postboard/internal/model"
	"postboard/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CardStyles contains the shared card styles.
var CardStyles = struct {
	Box        lipgloss.Style
	BoxFocused lipgloss.Style
	Title      lipgloss.Style
	Text       lipgloss.Style
	Label      lipgloss.Style
	Meta       lipgloss.Style
	Link       lipgloss.Style
	Avatar     lipgloss.Style
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		MarginBottom(1),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		MarginBottom(1),
	Title: lipgloss.NewStyle().
		Bold(true),
	Text: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Meta: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBlue)).
		Underline(true),
	Avatar: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBlueDark)).
		Background(lipgloss.Color("189")).
		Padding(0, 1),
}

// minCardWidth keeps narrow terminals readable.
const minCardWidth = 24

// Card is the basic card: a title over a block of text.
type Card struct {
	Title   string
	Content string
}

// View renders the card at the given outer width (0 = natural width).
func (c Card) View(width int) string {
	body := CardStyles.Title.Render(c.Title) + "\n" + CardStyles.Text.Render(c.Content)
	return box(CardStyles.Box, width).Render(body)
}

// PostActivatedMsg is the acknowledgment a PostCard emits when activated.
type PostActivatedMsg struct {
	ID int
}

// PostCard renders a fetched item with its owner and a read-more affordance.
type PostCard struct {
	Post model.Item
}

// View renders the card; focused cards get a highlighted border.
func (c PostCard) View(width int, focused bool) string {
	style := CardStyles.Box
	if focused {
		style = CardStyles.BoxFocused
	}
	inner := innerWidth(style, width)

	owner := "—"
	if id, ok := c.Post.Owner(); ok {
		owner = fmt.Sprintf("%d", id)
	}
	var b strings.Builder
	b.WriteString(CardStyles.Label.Render("USER ID: "+owner) + "\n")
	b.WriteString(CardStyles.Title.Render(textutil.Clamp(c.Post.Title, inner, 2)) + "\n")
	b.WriteString(CardStyles.Text.Render(textutil.Clamp(c.Post.Content, inner, 3)) + "\n")
	b.WriteString(CardStyles.Link.Render("Read More →"))
	return box(style, width).Render(b.String())
}

// Activate returns the command acknowledging the post.
func (c PostCard) Activate() tea.Cmd {
	id := c.Post.ID
	return func() tea.Msg { return PostActivatedMsg{ID: id} }
}

// ItemCard renders a user-created item with its id footer.
type ItemCard struct {
	Item model.Item
}

// View renders the card.
func (c ItemCard) View(width int) string {
	owner := "—"
	if id, ok := c.Item.Owner(); ok {
		owner = fmt.Sprintf("%d", id)
	}
	body := CardStyles.Title.Render(c.Item.Title) + "\n" +
		CardStyles.Text.Render(c.Item.Content) + "\n" +
		CardStyles.Meta.Render(fmt.Sprintf("Post ID: %d • User ID: %s", c.Item.ID, owner))
	return box(CardStyles.Box, width).Render(body)
}

// UserCard renders a user's contact details and company.
type UserCard struct {
	User model.User
}

// View renders the card.
func (c UserCard) View(width int) string {
	u := c.User
	inner := innerWidth(CardStyles.Box, width)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		CardStyles.Avatar.Render(u.Initial()),
		" ",
		CardStyles.Title.Render(u.Name)+"\n"+CardStyles.Meta.Render("@"+u.Username),
	)

	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(field("Email", CardStyles.Link.Render(u.Email)) + "\n")
	b.WriteString(field("Phone", u.PrimaryPhone()) + "\n")
	b.WriteString(field("Website", CardStyles.Link.Render(u.Website)) + "\n")
	b.WriteString(field("Address", textutil.Clamp(u.FullAddress(), max(inner-9, 10), 2)) + "\n")
	b.WriteString(CardStyles.Meta.Render(strings.Repeat("─", max(inner, 1))) + "\n")
	b.WriteString(CardStyles.Meta.Render("COMPANY: ") + u.Company.Name)
	return box(CardStyles.Box, width).Render(b.String())
}

func field(label, value string) string {
	return CardStyles.Label.Render(label+":") + " " + value
}

// box sizes style so the rendered block is width columns wide.
func box(style lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return style
	}
	w := max(width, minCardWidth) - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
	return style.Width(w)
}

// innerWidth is the text width available inside style at the outer width.
func innerWidth(style lipgloss.Style, width int) int {
	if width <= 0 {
		return 80
	}
	return max(width, minCardWidth) - style.GetHorizontalFrameSize()
}
