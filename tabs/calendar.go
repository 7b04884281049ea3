package tabs

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/internal/calendar"
	"github.com/jask/venturedesk/widgets"
)

const (
	calendarDatePane     = "date"
	calendarFormPane     = "form"
	calendarMeetingsPane = "meetings"
	calendarStatsPane    = "stats"

	slotAddedMessage = "Availability slot added successfully!"
	exportedMessage  = "Calendar exported! In a real app, this would download a file."
)

// CalendarOptions configures the scheduler view.
type CalendarOptions struct {
	DateFormat string
	Draft      calendar.Draft
	Durations  []int
	Now        func() time.Time
}

func (o CalendarOptions) withDefaults() CalendarOptions {
	if o.DateFormat == "" {
		o.DateFormat = "Jan 02, 2006"
	}
	if o.Draft.Duration == 0 {
		o.Draft = calendar.DefaultDraft()
	}
	if len(o.Durations) == 0 {
		o.Durations = []int{15, 30, 45, 60}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// CalendarTab is the meeting scheduler: a date picker, the add-slot form,
// the meeting list and the summary counters over one in-memory book.
type CalendarTab struct {
	paneTab
	book     *calendar.Book
	opts     CalendarOptions
	selected time.Time

	form     *slotForm
	meetings *meetingsPane
}

func NewCalendarTab(book *calendar.Book, opts CalendarOptions) *CalendarTab {
	opts = opts.withDefaults()
	t := &CalendarTab{book: book, opts: opts, selected: calendar.Day(opts.Now())}
	t.form = newSlotForm(t)
	t.meetings = &meetingsPane{tab: t}
	t.host = NewPaneHost(
		&datePane{tab: t},
		t.form,
		t.meetings,
		&statsPane{tab: t},
	)
	return t
}

func (t *CalendarTab) ID() string    { return "calendar" }
func (t *CalendarTab) Title() string { return "Meeting Scheduler" }
func (t *CalendarTab) Route() string { return "/calendar" }

// Selected returns the day new slots are added to.
func (t *CalendarTab) Selected() time.Time { return t.selected }

func (t *CalendarTab) Book() *calendar.Book { return t.book }

// CapturingText reports whether the form's title or time field has focus.
func (t *CalendarTab) CapturingText() bool {
	return t.host.IsFocused(calendarFormPane) && t.form.editingText()
}

func (t *CalendarTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && !t.CapturingText() {
		if m.Keys().IsAction(km, "calendar-export", t.Scope()) {
			return t.Export(m)
		}
	}
	return t.host.UpdateActive(m, msg)
}

// Export collates the book and reports it. Nothing is written.
func (t *CalendarTab) Export(m *core.Model) tea.Cmd {
	rows := t.book.Export()
	m.Logger().Info("calendar exported", zap.Int("rows", len(rows)))
	m.Alert("Export", exportedMessage)
	return nil
}

func (t *CalendarTab) selectDay(m *core.Model, day time.Time) {
	t.selected = calendar.Day(day)
	m.SetStatus("Selected " + t.selected.Format(t.opts.DateFormat))
}

func (t *CalendarTab) addSlot(m *core.Model, d calendar.Draft) calendar.Meeting {
	added := t.book.AddSlot(t.selected, d)
	m.Logger().Info("slot added",
		zap.String("id", added.ID),
		zap.String("date", added.Date.Format(time.DateOnly)),
		zap.String("time", added.Time.String()),
		zap.Int("duration", added.Duration),
		zap.String("kind", string(added.Kind)),
	)
	m.Alert("Add Slot", slotAddedMessage)
	return added
}

func (t *CalendarTab) respond(m *core.Model, mt calendar.Meeting, status calendar.Status) tea.Cmd {
	if !mt.Respondable() {
		m.SetStatus("Only pending meeting requests can be accepted or declined")
		return nil
	}
	updated, err := t.book.Respond(mt.ID, status)
	if err != nil {
		m.Logger().Warn("respond failed", zap.String("id", mt.ID), zap.Error(err))
		return core.ErrorCmd(err)
	}
	m.Logger().Info("meeting status changed", zap.String("id", updated.ID), zap.String("status", string(updated.Status)))
	verb := "Accepted"
	if status == calendar.StatusDeclined {
		verb = "Declined"
	}
	m.SetStatus(verb + " " + updated.Title)
	return nil
}

func (t *CalendarTab) Build(m *core.Model) widgets.Widget {
	left := widgets.VStack{
		Widgets: []widgets.Widget{t.host.BuildPane(calendarDatePane), t.host.BuildPane(calendarFormPane)},
		Ratios:  []float64{0.5, 0.5},
	}
	right := widgets.VStack{
		Widgets: []widgets.Widget{t.host.BuildPane(calendarMeetingsPane), t.host.BuildPane(calendarStatsPane)},
		Ratios:  []float64{0.7, 0.3},
	}
	return widgets.HStack{Widgets: []widgets.Widget{left, right}, Ratios: []float64{0.55, 0.45}, Gap: 1}
}

func addMonths(day time.Time, n int) time.Time {
	first := time.Date(day.Year(), day.Month()+time.Month(n), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(day.Day(), last)-1)
}
