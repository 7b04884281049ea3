package tabs

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/internal/calendar"
	"github.com/jask/venturedesk/widgets"
)

const dashboardUpcomingLimit = 5

type DashboardTab struct {
	paneTab
}

// NewDashboardTab builds the landing view. The upcoming pane reads from
// book; it never changes it.
func NewDashboardTab(book *calendar.Book, now func() time.Time, dateFormat string) *DashboardTab {
	if now == nil {
		now = time.Now
	}
	if dateFormat == "" {
		dateFormat = "Jan 02, 2006"
	}
	return &DashboardTab{paneTab{host: NewPaneHost(
		NewStaticPane("overview", "Overview", "pane:dashboard:overview", 'o', true,
			"Welcome back.\n\nReview deal flow, schedule meetings with founders and\ninvestors, and keep documents and payments in one place.", 0),
		&upcomingPane{book: book, now: now, dateFormat: dateFormat},
		NewStaticPane("links", "Quick Links", "pane:dashboard:links", 'l', true, quickLinks(), 0),
	)}}
}

func (t *DashboardTab) ID() string    { return "dashboard" }
func (t *DashboardTab) Title() string { return "Dashboard" }
func (t *DashboardTab) Route() string { return "/" }

func (t *DashboardTab) Build(m *core.Model) widgets.Widget {
	top := widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("overview"), t.host.BuildPane("links")},
		Ratios:  []float64{0.6, 0.4},
		Gap:     1,
	}
	return widgets.VStack{Widgets: []widgets.Widget{top, t.host.BuildPane("upcoming")}, Ratios: []float64{0.45, 0.55}}
}

func quickLinks() string {
	routes := []struct{ key, route, name string }{
		{"2", "/calendar", "Meeting Scheduler"},
		{"3", "/video-call", "Video Call"},
		{"4", "/documents", "Document Chamber"},
		{"5", "/payments", "Payments"},
		{"6", "/security", "Security"},
	}
	lines := make([]string, 0, len(routes))
	for _, r := range routes {
		lines = append(lines, fmt.Sprintf("%s  %-18s %s", r.key, r.name, mutedStyle.Render(r.route)))
	}
	return strings.Join(lines, "\n")
}

type upcomingPane struct {
	book       *calendar.Book
	now        func() time.Time
	dateFormat string
}

func (p *upcomingPane) ID() string                          { return "upcoming" }
func (p *upcomingPane) Title() string                       { return "Upcoming" }
func (p *upcomingPane) Scope() string                       { return "pane:dashboard:upcoming" }
func (p *upcomingPane) JumpKey() byte                       { return 'u' }
func (p *upcomingPane) Focusable() bool                     { return true }
func (p *upcomingPane) Update(*core.Model, tea.Msg) tea.Cmd { return nil }
func (p *upcomingPane) OnFocus() tea.Cmd                    { return nil }
func (p *upcomingPane) OnBlur() tea.Cmd                     { return nil }

func (p *upcomingPane) View(width, height int, selected, focused bool) string {
	var lines []string
	for _, mt := range p.book.Upcoming(p.now(), dashboardUpcomingLimit) {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			mt.Date.Format(p.dateFormat), mt.TimeRange(), statusBadge(mt.Status), mt.Title))
	}
	if len(lines) == 0 {
		lines = []string{mutedStyle.Render("No meetings scheduled")}
	}
	return widgets.Pane{Title: p.Title(), Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}
