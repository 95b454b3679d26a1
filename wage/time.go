package wage

import (
	"fmt"
	"time"
)

// =============================================================================
// CLOCK TIME - Local time of day in minutes since midnight
// =============================================================================

// ClockTime is a local time of day, stored as minutes since midnight.
// Parsed from and formatted as "HH:MM".
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClock parses "HH:MM" into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

// MustClock is ParseClock for literals in defaults and tests.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }
func (c ClockTime) Valid() bool { return c >= 0 && c < minutesPerDay }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// =============================================================================
// TIME WINDOW - Time-of-day band, wrap past midnight allowed
// =============================================================================

// TimeWindow is the half-open band [From, To). If To <= From the window wraps
// past midnight (e.g. 21:00-06:00).
type TimeWindow struct {
	From ClockTime
	To   ClockTime
}

// Contains reports whether the minute-of-day m falls inside the window.
func (w TimeWindow) Contains(m ClockTime) bool {
	if w.From == w.To {
		return false // empty window, not full-day
	}
	if w.To > w.From {
		return m >= w.From && m < w.To
	}
	return m >= w.From || m < w.To
}

func (w TimeWindow) Valid() bool { return w.From.Valid() && w.To.Valid() }

// Boundaries returns the window edges as minute-of-day values. Used by the
// classifier to split intervals where the category can change.
func (w TimeWindow) Boundaries() []int { return []int{int(w.From), int(w.To)} }

func (w TimeWindow) String() string { return w.From.String() + "-" + w.To.String() }

// =============================================================================
// DATE HELPERS - Calendar-day arithmetic on time.Time
// =============================================================================

const dateLayout = "2006-01-02"

// ParseDate parses "YYYY-MM-DD" into a UTC midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Date builds a UTC midnight time.Time for a calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates an instant to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

func FormatDate(t time.Time) string { return t.Format(dateLayout) }

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ISOWeek returns a sortable key identifying the ISO week (Mon-Sun) a day
// belongs to. Used to group days for weekly overtime.
func ISOWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthRange returns the first and last day of a month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := Date(year, month, 1)
	last := first.AddDate(0, 1, -1)
	return first, last
}
