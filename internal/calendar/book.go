package calendar

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultSlotTitle is used when a slot is added with an empty title.
const DefaultSlotTitle = "Available Slot"

// Draft holds the add-slot form values.
type Draft struct {
	Title    string
	Time     Clock
	Duration int
	Kind     Kind
}

func DefaultDraft() Draft {
	return Draft{Time: Clock{Hour: 9}, Duration: 30, Kind: KindAvailability}
}

// Summary holds the counters shown next to the meeting list.
type Summary struct {
	Meetings     int
	Confirmed    int
	Pending      int
	Availability int
}

type Option func(*Book)

// WithIDGenerator replaces the UUID generator used for new records.
func WithIDGenerator(next func() string) Option {
	return func(b *Book) {
		if next != nil {
			b.newID = next
		}
	}
}

// Book is the ordered list of meetings owned by one scheduler view.
// Every mutation rebuilds the backing slice, so snapshots returned by
// Meetings stay valid after later changes.
type Book struct {
	meetings []Meeting
	newID    func() string
}

func NewBook(seed []Meeting, opts ...Option) *Book {
	b := &Book{newID: uuid.NewString}
	for _, opt := range opts {
		opt(b)
	}
	b.meetings = make([]Meeting, 0, len(seed))
	for _, m := range seed {
		b.meetings = append(b.meetings, m.clone())
	}
	return b
}

func (b *Book) Len() int { return len(b.meetings) }

// Meetings returns a deep copy of the list in insertion order.
func (b *Book) Meetings() []Meeting {
	out := make([]Meeting, len(b.meetings))
	for i, m := range b.meetings {
		out[i] = m.clone()
	}
	return out
}

func (b *Book) Get(id string) (Meeting, bool) {
	for _, m := range b.meetings {
		if m.ID == id {
			return m.clone(), true
		}
	}
	return Meeting{}, false
}

// AddSlot appends a pending record on the given day built from d.
func (b *Book) AddSlot(date time.Time, d Draft) Meeting {
	title := d.Title
	if title == "" {
		title = DefaultSlotTitle
	}
	m := Meeting{
		ID:           b.newID(),
		Title:        title,
		Date:         Day(date),
		Time:         d.Time,
		Duration:     d.Duration,
		Participants: []string{},
		Status:       StatusPending,
		Kind:         d.Kind,
	}
	next := make([]Meeting, 0, len(b.meetings)+1)
	next = append(next, b.meetings...)
	b.meetings = append(next, m)
	return m.clone()
}

// Respond sets the status of one record to confirmed or declined. The
// current status is not checked.
func (b *Book) Respond(id string, status Status) (Meeting, error) {
	if status != StatusConfirmed && status != StatusDeclined {
		return Meeting{}, fmt.Errorf("%w: %q", ErrInvalidResponse, status)
	}
	idx := -1
	for i, m := range b.meetings {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Meeting{}, fmt.Errorf("respond %q: %w", id, ErrMeetingNotFound)
	}
	next := make([]Meeting, len(b.meetings))
	copy(next, b.meetings)
	next[idx].Status = status
	b.meetings = next
	return next[idx].clone(), nil
}

func (b *Book) HasMeetingsOn(day time.Time) bool {
	for _, m := range b.meetings {
		if SameDay(m.Date, day) {
			return true
		}
	}
	return false
}

// On returns the records whose date falls on day, in list order.
func (b *Book) On(day time.Time) []Meeting {
	var out []Meeting
	for _, m := range b.meetings {
		if SameDay(m.Date, day) {
			out = append(out, m.clone())
		}
	}
	return out
}

func (b *Book) Summary() Summary {
	var s Summary
	for _, m := range b.meetings {
		switch m.Kind {
		case KindMeeting:
			s.Meetings++
		case KindAvailability:
			s.Availability++
		}
		switch m.Status {
		case StatusConfirmed:
			s.Confirmed++
		case StatusPending:
			s.Pending++
		}
	}
	return s
}

// Upcoming returns up to n records dated on or after from's day, ordered by
// date then start time. Declined records are skipped. n <= 0 means no limit.
func (b *Book) Upcoming(from time.Time, n int) []Meeting {
	start := Day(from)
	var out []Meeting
	for _, m := range b.meetings {
		if m.Status == StatusDeclined || m.Date.Before(start) {
			continue
		}
		out = append(out, m.clone())
	}
	slices.SortStableFunc(out, func(a, b Meeting) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.Time.minutes() - b.Time.minutes()
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
