package ui

import (
	"fmt"
	"strings"
	"time"

	"postboard/internal/fetch"
	"postboard/internal/ui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsSource is implemented by sources that keep a per-collection record
// of fetch outcomes. *fetch.Fetcher implements it.
type StatsSource interface {
	ItemsStats(limit int) fetch.Stats
	UsersStats() fetch.Stats
}

// endpointStats is one row of the stats overlay.
type endpointStats struct {
	name  string
	stats fetch.Stats
}

// StatsOverlay shows a snapshot of fetch outcomes per collection.
type StatsOverlay struct {
	rows  []endpointStats
	now   func() time.Time
	width int
}

var _ View = (*StatsOverlay)(nil)

// NewStatsOverlay snapshots src for the items collection at limit and the
// users collection.
func NewStatsOverlay(src StatsSource, limit int) *StatsOverlay {
	items := "posts"
	if limit > 0 {
		items = fmt.Sprintf("posts (limit %d)", limit)
	}
	return &StatsOverlay{
		rows: []endpointStats{
			{name: items, stats: src.ItemsStats(limit)},
			{name: "users", stats: src.UsersStats()},
		},
		now:   time.Now,
		width: 60,
	}
}

// Init implements View.
func (v *StatsOverlay) Init() tea.Cmd { return nil }

// Update implements View.
func (v *StatsOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok && msg.Width > 0 {
		v.width = min(msg.Width-8, 90)
	}
	return v, nil
}

// View implements View.
func (v *StatsOverlay) View() string {
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bad := lipgloss.NewStyle().Foreground(lipgloss.Color(component.ColorDanger))

	lines := []string{ModalStyles.Title.Render("Fetch stats"), ""}
	for i, r := range v.rows {
		last := i == len(v.rows)-1
		connector, childPrefix := "├─", "│  "
		if last {
			connector, childPrefix = "└─", "   "
		}

		icon := Styles.Muted.Render("·")
		switch {
		case r.stats.LastError != nil && r.stats.LastSuccess.IsZero():
			icon = bad.Render("✗")
		case !r.stats.LastSuccess.IsZero():
			icon = ok.Render("✓")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", connector, r.name, icon))

		s := r.stats
		lines = append(lines, childPrefix+"├─ "+Styles.Muted.Render(fmt.Sprintf(
			"%d fetched • %d failed • %d cached • %d stale", s.Successes, s.Failures, s.CacheHits, s.StaleServed)))
		lastOK := "never"
		if !s.LastSuccess.IsZero() {
			lastOK = formatDuration(v.now().Sub(s.LastSuccess)) + " ago"
		}
		if s.LastError == nil {
			lines = append(lines, childPrefix+"└─ "+Styles.Muted.Render("last success: "+lastOK))
			continue
		}
		lines = append(lines, childPrefix+"├─ "+Styles.Muted.Render("last success: "+lastOK))
		errLine := truncateCols(s.LastError.Error(), v.width-len(childPrefix)-16)
		lines = append(lines, childPrefix+"└─ "+bad.Render("last error: "+errLine))
	}
	lines = append(lines, "", ModalStyles.Help.Render("Esc: close"))
	return ModalStyles.Box.Render(strings.Join(lines, "\n"))
}

// formatDuration renders d at second precision, e.g. "42s", "3m5s", "1h2m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
