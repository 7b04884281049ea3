package tabs

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/internal/calendar"
)

var refNow = time.Date(2026, time.March, 10, 15, 4, 0, 0, time.UTC)

func fixedNow() time.Time { return refNow }

func seededBook() *calendar.Book {
	n := 0
	return calendar.NewBook(calendar.Seed(refNow), calendar.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}))
}

type stubScreen struct{ title, message string }

func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Scope() string        { return core.ScopeAlert }
func (s *stubScreen) View(int, int) string { return s.message }
func (s *stubScreen) Update(tea.Msg) (core.Screen, tea.Cmd, bool) {
	return s, nil, true
}

func newCalendarModel(t *testing.T, book *calendar.Book) (*CalendarTab, core.Model) {
	t.Helper()
	tab := NewCalendarTab(book, CalendarOptions{Now: fixedNow})
	m := core.NewModel([]core.Tab{tab}, core.NewKeyRegistry(core.DefaultKeyBindings()), nil, nil, core.AppData{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tab, next.(core.Model)
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(m core.Model, keys ...tea.KeyMsg) core.Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(core.Model)
	}
	return m
}

func TestCalendarAddSlotFromForm(t *testing.T) {
	book := seededBook()
	tab, m := newCalendarModel(t, book)

	m = press(m, key(tea.KeyRight), key(tea.KeyEnter))
	require.True(t, tab.CapturingText(), "title field should capture text")

	m = press(m, runes("Office hours"), key(tea.KeyEnter))

	require.Equal(t, 3, book.Len())
	added := book.Meetings()[2]
	require.Equal(t, "Office hours", added.Title)
	require.Equal(t, calendar.Day(refNow), added.Date)
	require.Equal(t, "09:00", added.Time.String())
	require.Equal(t, 30, added.Duration)
	require.Equal(t, calendar.StatusPending, added.Status)
	require.Equal(t, calendar.KindAvailability, added.Kind)
	require.Empty(t, added.Participants)

	msg, isErr := m.Status()
	require.False(t, isErr)
	require.Equal(t, slotAddedMessage, msg)
	require.Empty(t, tab.form.title.Value(), "form resets after submit")
	require.Equal(t, "09:00", tab.form.clock.Value())
}

func TestCalendarAddSlotPushesBlockingAlert(t *testing.T) {
	book := seededBook()
	tab, m := newCalendarModel(t, book)
	var got *stubScreen
	m.OpenAlertModal = func(_ *core.Model, title, message string) core.Screen {
		got = &stubScreen{title: title, message: message}
		return got
	}

	m = press(m, key(tea.KeyRight), key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, 3, book.Len())
	require.Equal(t, calendar.DefaultSlotTitle, book.Meetings()[2].Title)
	require.Equal(t, 1, m.ScreenDepth())
	require.Equal(t, slotAddedMessage, got.message)

	// The alert takes the next key; the form does not see it.
	m = press(m, key(tea.KeyEnter))
	require.Equal(t, 0, m.ScreenDepth())
	require.Equal(t, 3, book.Len())
	require.True(t, tab.CapturingText())
}

func TestCalendarInvalidTimeAddsNothing(t *testing.T) {
	book := seededBook()
	tab, m := newCalendarModel(t, book)

	m = press(m, key(tea.KeyRight), key(tea.KeyEnter))
	tab.form.clock.SetValue("25:00")
	m = press(m, key(tea.KeyEnter))

	require.Equal(t, 2, book.Len())
	msg, isErr := m.Status()
	require.True(t, isErr)
	require.Contains(t, msg, "HH:MM")
}

func TestCalendarFormDurationAndKind(t *testing.T) {
	book := seededBook()
	tab, m := newCalendarModel(t, book)

	m = press(m, key(tea.KeyRight), key(tea.KeyEnter), key(tea.KeyTab), key(tea.KeyTab))
	require.False(t, tab.CapturingText(), "duration field does not capture text")
	m = press(m, key(tea.KeyRight), key(tea.KeyTab), key(tea.KeySpace), key(tea.KeyEnter))

	require.Equal(t, 3, book.Len())
	added := book.Meetings()[2]
	require.Equal(t, 45, added.Duration)
	require.Equal(t, calendar.KindMeeting, added.Kind)
	require.Equal(t, calendar.StatusPending, added.Status)
	require.True(t, added.Respondable())

	// esc releases the form, then the meetings pane answers the new request.
	m = press(m, key(tea.KeyEsc), key(tea.KeyRight), runes("j"), runes("j"), runes("a"))
	updated, ok := book.Get(added.ID)
	require.True(t, ok)
	require.Equal(t, calendar.StatusConfirmed, updated.Status)
	msg, _ := m.Status()
	require.Equal(t, "Accepted "+calendar.DefaultSlotTitle, msg)
}

func TestCalendarTypingDoesNotTriggerGlobalKeys(t *testing.T) {
	book := seededBook()
	tab, m := newCalendarModel(t, book)

	m = press(m, key(tea.KeyRight), key(tea.KeyEnter), runes("q"), runes("2"), runes("e"))
	require.Equal(t, "q2e", tab.form.title.Value())
	require.Equal(t, 0, m.ScreenDepth())
}

func TestCalendarAcceptIgnoredForAvailability(t *testing.T) {
	book := seededBook()
	_, m := newCalendarModel(t, book)

	// Meetings pane, second card is the seeded availability slot.
	m = press(m, key(tea.KeyRight), key(tea.KeyRight), runes("j"), runes("a"))
	slot, _ := book.Get("2")
	require.Equal(t, calendar.StatusPending, slot.Status)
	msg, _ := m.Status()
	require.Equal(t, "Only pending meeting requests can be accepted or declined", msg)

	// First card is already confirmed, so decline is not offered either.
	m = press(m, runes("k"), runes("d"))
	review, _ := book.Get("1")
	require.Equal(t, calendar.StatusConfirmed, review.Status)
}

func TestCalendarDeclinePendingRequest(t *testing.T) {
	seed := calendar.Seed(refNow)
	seed[0].Status = calendar.StatusPending
	book := calendar.NewBook(seed)
	_, m := newCalendarModel(t, book)

	m = press(m, key(tea.KeyRight), key(tea.KeyRight), runes("d"))
	review, _ := book.Get("1")
	require.Equal(t, calendar.StatusDeclined, review.Status)
	slot, _ := book.Get("2")
	require.Equal(t, calendar.StatusPending, slot.Status)
	require.Equal(t, calendar.Summary{Meetings: 1, Pending: 1, Availability: 1}, book.Summary())
}

func TestCalendarExport(t *testing.T) {
	book := seededBook()
	_, m := newCalendarModel(t, book)
	var got *stubScreen
	m.OpenAlertModal = func(_ *core.Model, title, message string) core.Screen {
		got = &stubScreen{title: title, message: message}
		return got
	}

	m = press(m, runes("e"))
	require.Equal(t, 1, m.ScreenDepth())
	require.Equal(t, exportedMessage, got.message)
	require.Equal(t, 2, book.Len())
}

func TestCalendarDateNavigation(t *testing.T) {
	tab, m := newCalendarModel(t, seededBook())
	require.Equal(t, calendar.Day(refNow), tab.Selected())

	m = press(m, key(tea.KeyEnter), key(tea.KeyRight), key(tea.KeyDown))
	require.Equal(t, time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC), tab.Selected())

	m = press(m, key(tea.KeyPgDown))
	require.Equal(t, time.Date(2026, time.April, 18, 0, 0, 0, 0, time.UTC), tab.Selected())

	m = press(m, key(tea.KeyLeft), key(tea.KeyUp), key(tea.KeyPgUp))
	require.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), tab.Selected())

	m = press(m, key(tea.KeyPgUp), runes("t"))
	require.Equal(t, calendar.Day(refNow), tab.Selected())
	msg, _ := m.Status()
	require.Equal(t, "Selected Mar 10, 2026", msg)
}

func TestAddMonthsClampsDay(t *testing.T) {
	jan31 := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), addMonths(jan31, 1))
	require.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), addMonths(jan31, -1))
}

func TestCalendarViewShowsCardsAndStats(t *testing.T) {
	_, m := newCalendarModel(t, seededBook())
	view := m.View()
	for _, want := range []string{
		"Meeting Scheduler",
		"Select Date",
		"March 2026",
		"Add Availability Slot",
		"Project Review",
		"confirmed",
		"Mar 11, 2026",
		"10:00 - 11:00",
		"John Investor, Sarah Entrepreneur",
		"14:00 - 14:30",
		"Total Meetings",
		"Slots Available",
	} {
		require.True(t, strings.Contains(view, want), "view missing %q:\n%s", want, view)
	}
}

func TestCalendarFormDefaults(t *testing.T) {
	tab := NewCalendarTab(seededBook(), CalendarOptions{Now: fixedNow})
	require.Equal(t, "e.g., Available for meetings", tab.form.title.Placeholder)
	d, err := tab.form.draft()
	require.NoError(t, err)
	require.Equal(t, calendar.DefaultDraft(), d)
}

func TestCalendarViewEmptyState(t *testing.T) {
	_, m := newCalendarModel(t, calendar.NewBook(nil))
	require.Contains(t, m.View(), "No meetings scheduled")
}

func TestCalendarCardsOfferRespondOnlyForPendingRequests(t *testing.T) {
	book := calendar.NewBook(nil)
	book.AddSlot(refNow, calendar.DefaultDraft())
	_, m := newCalendarModel(t, book)
	view := m.View()
	require.Contains(t, view, "pending")
	require.NotContains(t, view, "a Accept")
	require.NotContains(t, view, "d Decline")

	book.AddSlot(refNow, calendar.Draft{
		Title:    "Intro call",
		Time:     calendar.MustClock("11:00"),
		Duration: 30,
		Kind:     calendar.KindMeeting,
	})
	view = m.View()
	require.Contains(t, view, "Intro call")
	require.Contains(t, view, "a Accept")
	require.Contains(t, view, "d Decline")
}
