package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("time must be HH:MM")

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 || len(hh) > 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || len(mm) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// MustClock panics on malformed input. Only for literals.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// Add moves the clock forward by the given minutes. Overflow wraps around
// midnight; days reports how many midnights were crossed.
func (c Clock) Add(minutes int) (Clock, int) {
	total := c.minutes() + minutes
	days := total / minutesPerDay
	rem := total % minutesPerDay
	if rem < 0 {
		rem += minutesPerDay
		days--
	}
	return Clock{Hour: rem / 60, Minute: rem % 60}, days
}

// FormatRange renders "HH:MM - HH:MM". The end wraps at midnight and carries
// no next-day marker.
func FormatRange(start Clock, duration int) string {
	end, _ := start.Add(duration)
	return start.String() + " - " + end.String()
}
