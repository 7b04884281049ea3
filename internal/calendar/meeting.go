package calendar

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrInvalidResponse = errors.New("response must be confirmed or declined")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidKind     = errors.New("invalid kind")
)

// Status is the lifecycle label of a meeting record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Kind separates open availability from proposed meetings.
type Kind string

const (
	KindAvailability Kind = "availability"
	KindMeeting      Kind = "meeting"
)

func (k Kind) Valid() bool {
	return k == KindAvailability || k == KindMeeting
}

// Label is the human form shown on the slot type selector.
func (k Kind) Label() string {
	switch k {
	case KindAvailability:
		return "Availability Slot"
	case KindMeeting:
		return "Meeting Request"
	}
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// Meeting is a single calendar record. Date holds the start of the calendar
// day; the clock time lives in Time.
type Meeting struct {
	ID           string
	Title        string
	Date         time.Time
	Time         Clock
	Duration     int
	Participants []string
	Status       Status
	Kind         Kind
}

// Respondable reports whether accept/decline applies to m.
func (m Meeting) Respondable() bool {
	return m.Status == StatusPending && m.Kind == KindMeeting
}

func (m Meeting) End() Clock {
	end, _ := m.Time.Add(m.Duration)
	return end
}

func (m Meeting) TimeRange() string {
	return FormatRange(m.Time, m.Duration)
}

func (m Meeting) clone() Meeting {
	m.Participants = slices.Clone(m.Participants)
	return m
}

// Day truncates t to the start of its calendar day in t's own location.
func Day(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar days as seen in each value's own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
