package tabs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/internal/calendar"
	"github.com/jask/venturedesk/widgets"
)

var (
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	activeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	cardTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	cursorTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2563eb")).Padding(0, 1)
	acceptStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#16a34a")).Padding(0, 1)
	declineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#dc2626")).Padding(0, 1)
)

// statusBadge colors a status label: confirmed green, pending yellow,
// declined red, anything else grey.
func statusBadge(s calendar.Status) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch s {
	case calendar.StatusConfirmed:
		style = style.Foreground(lipgloss.Color("#166534")).Background(lipgloss.Color("#dcfce7"))
	case calendar.StatusPending:
		style = style.Foreground(lipgloss.Color("#854d0e")).Background(lipgloss.Color("#fef9c3"))
	case calendar.StatusDeclined:
		style = style.Foreground(lipgloss.Color("#991b1b")).Background(lipgloss.Color("#fee2e2"))
	default:
		style = style.Foreground(lipgloss.Color("#1f2937")).Background(lipgloss.Color("#f3f4f6"))
	}
	return style.Render(string(s))
}

type datePane struct {
	tab *CalendarTab
}

func (p *datePane) ID() string       { return calendarDatePane }
func (p *datePane) Title() string    { return "Select Date" }
func (p *datePane) Scope() string    { return core.ScopeCalendarDate }
func (p *datePane) JumpKey() byte    { return 'c' }
func (p *datePane) Focusable() bool  { return true }
func (p *datePane) OnFocus() tea.Cmd { return nil }
func (p *datePane) OnBlur() tea.Cmd  { return nil }

func (p *datePane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	t := p.tab
	keys := m.Keys()
	switch {
	case keys.IsAction(km, "calendar-today", p.Scope()):
		t.selectDay(m, t.opts.Now())
	case keys.IsAction(km, "calendar-prev-month", p.Scope()):
		t.selectDay(m, addMonths(t.selected, -1))
	case keys.IsAction(km, "calendar-next-month", p.Scope()):
		t.selectDay(m, addMonths(t.selected, 1))
	case km.String() == "left":
		t.selectDay(m, t.selected.AddDate(0, 0, -1))
	case km.String() == "right":
		t.selectDay(m, t.selected.AddDate(0, 0, 1))
	case km.String() == "up":
		t.selectDay(m, t.selected.AddDate(0, 0, -7))
	case km.String() == "down":
		t.selectDay(m, t.selected.AddDate(0, 0, 7))
	}
	return nil
}

func (p *datePane) View(width, height int, selected, focused bool) string {
	t := p.tab
	grid := widgets.MonthGrid{Selected: t.selected, Today: t.opts.Now(), Marked: t.book.HasMeetingsOn}
	lines := grid.Lines()
	lines = append(lines, "", labelStyle.Render("Selected: ")+t.selected.Format(t.opts.DateFormat))
	if n := len(t.book.On(t.selected)); n > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d scheduled that day", n)))
	}
	return widgets.Pane{Title: p.Title(), Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

type formField int

const (
	fieldTitle formField = iota
	fieldTime
	fieldDuration
	fieldKind
	fieldCount
)

// slotForm is the add-slot form: title, time, duration and slot type.
type slotForm struct {
	tab      *CalendarTab
	title    textinput.Model
	clock    textinput.Model
	duration int
	kind     calendar.Kind
	field    formField
	active   bool
}

func newSlotForm(t *CalendarTab) *slotForm {
	title := textinput.New()
	title.Placeholder = "e.g., Available for meetings"
	title.Prompt = ""
	title.CharLimit = 80

	clock := textinput.New()
	clock.Placeholder = "HH:MM"
	clock.Prompt = ""
	clock.CharLimit = 5

	f := &slotForm{tab: t, title: title, clock: clock}
	f.reset()
	return f
}

func (f *slotForm) ID() string      { return calendarFormPane }
func (f *slotForm) Title() string   { return "Add Availability Slot" }
func (f *slotForm) Scope() string   { return core.ScopeCalendarForm }
func (f *slotForm) JumpKey() byte   { return 'a' }
func (f *slotForm) Focusable() bool { return true }

func (f *slotForm) OnFocus() tea.Cmd {
	f.active = true
	return f.setField(f.field)
}

func (f *slotForm) OnBlur() tea.Cmd {
	f.active = false
	f.title.Blur()
	f.clock.Blur()
	return nil
}

func (f *slotForm) editingText() bool {
	return f.active && (f.field == fieldTitle || f.field == fieldTime)
}

// reset restores the configured defaults.
func (f *slotForm) reset() {
	d := f.tab.opts.Draft
	f.title.SetValue(d.Title)
	f.clock.SetValue(d.Time.String())
	f.duration = d.Duration
	f.kind = d.Kind
	f.field = fieldTitle
}

func (f *slotForm) setField(next formField) tea.Cmd {
	f.field = (next + fieldCount) % fieldCount
	f.title.Blur()
	f.clock.Blur()
	if !f.active {
		return nil
	}
	switch f.field {
	case fieldTitle:
		return f.title.Focus()
	case fieldTime:
		return f.clock.Focus()
	}
	return nil
}

// draft validates the current form values.
func (f *slotForm) draft() (calendar.Draft, error) {
	clock, err := calendar.ParseClock(f.clock.Value())
	if err != nil {
		return calendar.Draft{}, fmt.Errorf("time %q: %w", f.clock.Value(), err)
	}
	return calendar.Draft{Title: f.title.Value(), Time: clock, Duration: f.duration, Kind: f.kind}, nil
}

func (f *slotForm) cycleDuration(delta int) {
	opts := f.tab.opts.Durations
	idx := slices.Index(opts, f.duration)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(opts)) % len(opts)
	}
	f.duration = opts[idx]
}

func (f *slotForm) toggleKind() {
	if f.kind == calendar.KindMeeting {
		f.kind = calendar.KindAvailability
		return
	}
	f.kind = calendar.KindMeeting
}

func (f *slotForm) submit(m *core.Model) tea.Cmd {
	d, err := f.draft()
	if err != nil {
		m.SetError(err)
		return nil
	}
	f.tab.addSlot(m, d)
	f.reset()
	return f.setField(fieldTitle)
}

func (f *slotForm) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(km, "form-submit", f.Scope()):
		return f.submit(m)
	case keys.IsAction(km, "form-next-field", f.Scope()):
		return f.setField(f.field + 1)
	case keys.IsAction(km, "form-prev-field", f.Scope()):
		return f.setField(f.field - 1)
	}
	switch f.field {
	case fieldDuration:
		switch km.String() {
		case "left", "h":
			f.cycleDuration(-1)
		case "right", "l", " ", "space":
			f.cycleDuration(1)
		}
		return nil
	case fieldKind:
		switch km.String() {
		case "left", "right", "h", "l", " ", "space":
			f.toggleKind()
		}
		return nil
	}
	return f.updateInputs(msg)
}

func (f *slotForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.field {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldTime:
		f.clock, cmd = f.clock.Update(msg)
	}
	return cmd
}

func (f *slotForm) label(field formField, text string) string {
	text = fmt.Sprintf("%-9s", text)
	if f.active && f.field == field {
		return activeLabelStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func (f *slotForm) View(width, height int, selected, focused bool) string {
	radio := func(k calendar.Kind) string {
		if f.kind == k {
			return "(•) " + k.Label()
		}
		return "( ) " + k.Label()
	}
	lines := []string{
		labelStyle.Render("  Date     ") + f.tab.selected.Format(f.tab.opts.DateFormat),
		f.label(fieldTitle, "Title") + f.title.View(),
		f.label(fieldTime, "Time") + f.clock.View(),
		f.label(fieldDuration, "Duration") + fmt.Sprintf("‹ %d min ›", f.duration),
		f.label(fieldKind, "Type") + radio(calendar.KindAvailability) + "  " + radio(calendar.KindMeeting),
		"",
		"           " + buttonStyle.Render("+ Add Slot"),
	}
	return widgets.Pane{Title: f.Title(), Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

// meetingsPane lists every record as a card. The cursor picks the card
// that accept and decline act on.
type meetingsPane struct {
	tab    *CalendarTab
	cursor int
}

func (p *meetingsPane) ID() string       { return calendarMeetingsPane }
func (p *meetingsPane) Title() string    { return "Scheduled Meetings" }
func (p *meetingsPane) Scope() string    { return core.ScopeCalendarMeetings }
func (p *meetingsPane) JumpKey() byte    { return 'm' }
func (p *meetingsPane) Focusable() bool  { return true }
func (p *meetingsPane) OnFocus() tea.Cmd { return nil }
func (p *meetingsPane) OnBlur() tea.Cmd  { return nil }

func (p *meetingsPane) current() (calendar.Meeting, bool) {
	all := p.tab.book.Meetings()
	if len(all) == 0 {
		return calendar.Meeting{}, false
	}
	p.cursor = min(max(p.cursor, 0), len(all)-1)
	return all[p.cursor], true
}

func (p *meetingsPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(km, "list-down", p.Scope()):
		p.cursor = min(p.cursor+1, max(p.tab.book.Len()-1, 0))
	case keys.IsAction(km, "list-up", p.Scope()):
		p.cursor = max(p.cursor-1, 0)
	case keys.IsAction(km, "meeting-accept", p.Scope()):
		if mt, ok := p.current(); ok {
			return p.tab.respond(m, mt, calendar.StatusConfirmed)
		}
	case keys.IsAction(km, "meeting-decline", p.Scope()):
		if mt, ok := p.current(); ok {
			return p.tab.respond(m, mt, calendar.StatusDeclined)
		}
	}
	return nil
}

func (p *meetingsPane) card(mt calendar.Meeting, width int, atCursor bool) []string {
	titleStyle := cardTitleStyle
	marker := "  "
	if atCursor {
		titleStyle = cursorTitleStyle
		marker = "▸ "
	}
	badge := statusBadge(mt.Status)
	gap := max(1, width-lipgloss.Width(marker+mt.Title)-lipgloss.Width(badge))
	lines := []string{
		marker + titleStyle.Render(mt.Title) + strings.Repeat(" ", gap) + badge,
		"    " + mt.Date.Format(p.tab.opts.DateFormat),
		"    " + mt.TimeRange(),
	}
	if len(mt.Participants) > 0 {
		lines = append(lines, "    "+strings.Join(mt.Participants, ", "))
	}
	if mt.Respondable() {
		lines = append(lines, "    "+acceptStyle.Render("a Accept")+" "+declineStyle.Render("d Decline"))
	}
	return append(lines, "")
}

func (p *meetingsPane) View(width, height int, selected, focused bool) string {
	all := p.tab.book.Meetings()
	inner := max(1, width-4)
	var lines []string
	cursorStart, cursorEnd := 0, 0
	if len(all) == 0 {
		lines = []string{"", mutedStyle.Render("No meetings scheduled")}
	}
	p.cursor = min(max(p.cursor, 0), max(len(all)-1, 0))
	for i, mt := range all {
		card := p.card(mt, inner, i == p.cursor && (selected || focused))
		if i == p.cursor {
			cursorStart, cursorEnd = len(lines), len(lines)+len(card)
		}
		lines = append(lines, card...)
	}
	visible := max(1, height-2)
	start := 0
	if cursorEnd > visible {
		start = cursorEnd - visible
	}
	start = min(start, cursorStart)
	if start > 0 {
		lines = lines[start:]
	}
	return widgets.Pane{Title: p.Title(), Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

type statsPane struct {
	tab *CalendarTab
}

func (p *statsPane) ID() string                          { return calendarStatsPane }
func (p *statsPane) Title() string                       { return "Meeting Stats" }
func (p *statsPane) Scope() string                       { return core.ScopeCalendarStats }
func (p *statsPane) JumpKey() byte                       { return 's' }
func (p *statsPane) Focusable() bool                     { return false }
func (p *statsPane) Update(*core.Model, tea.Msg) tea.Cmd { return nil }
func (p *statsPane) OnFocus() tea.Cmd                    { return nil }
func (p *statsPane) OnBlur() tea.Cmd                     { return nil }

func (p *statsPane) View(width, height int, selected, focused bool) string {
	s := p.tab.book.Summary()
	stat := func(color string, n int, label string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(fmt.Sprintf("%3d", n)) + " " + labelStyle.Render(fmt.Sprintf("%-16s", label))
	}
	lines := []string{
		stat("#2563eb", s.Meetings, "Total Meetings") + stat("#16a34a", s.Confirmed, "Confirmed"),
		stat("#ca8a04", s.Pending, "Pending") + stat("#9333ea", s.Availability, "Slots Available"),
	}
	return widgets.Pane{Title: p.Title(), Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}
