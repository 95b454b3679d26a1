/*
Package calendar computes Norwegian public holidays.

PURPOSE:
  Pure arithmetic holiday calendar: fixed-date holidays plus the
  Easter-relative movable ones, anchored by the Computus date of Easter
  Sunday. No lookup tables and no external calendar dependency, so any
  4-digit year works without a maintained data file.

HOLIDAY SET:
  Fixed:   New Year's Day (Jan 1), Labour Day (May 1),
           Constitution Day (May 17), Christmas Day (Dec 25),
           Boxing Day (Dec 26)
  Movable: Maundy Thursday (E-3), Good Friday (E-2), Easter Sunday (E),
           Easter Monday (E+1), Ascension Day (E+39), Whit Sunday (E+49),
           Whit Monday (E+50)

Results are deterministic per year and cached behind a read-write mutex.
*/
package calendar

import (
	"sort"
	"sync"
	"time"
)

// Easter returns Easter Sunday for a Gregorian year, via the anonymous
// Gregorian Computus algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// HolidaysFor computes the public-holiday dates of a year, ascending.
func HolidaysFor(year int) []time.Time {
	easter := Easter(year)
	days := []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		easter.AddDate(0, 0, -3), // Maundy Thursday
		easter.AddDate(0, 0, -2), // Good Friday
		easter,                   // Easter Sunday
		easter.AddDate(0, 0, 1),  // Easter Monday
		time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.May, 17, 0, 0, 0, 0, time.UTC),
		easter.AddDate(0, 0, 39), // Ascension Day
		easter.AddDate(0, 0, 49), // Whit Sunday
		easter.AddDate(0, 0, 50), // Whit Monday
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC),
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// =============================================================================
// CALENDAR - Cached per-year holiday lookups
// =============================================================================

// Calendar caches per-year holiday sets. Safe for concurrent use.
// Implements wage.HolidayCalendar.
type Calendar struct {
	mu    sync.RWMutex
	years map[int]map[time.Time]struct{}
}

func New() *Calendar {
	return &Calendar{years: make(map[int]map[time.Time]struct{})}
}

func (c *Calendar) yearSet(year int) map[time.Time]struct{} {
	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return set
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok = c.years[year]; ok {
		return set
	}
	set = make(map[time.Time]struct{})
	for _, d := range HolidaysFor(year) {
		set[d] = struct{}{}
	}
	c.years[year] = set
	return set
}

// IsHoliday reports whether the given calendar day is a public holiday.
func (c *Calendar) IsHoliday(day time.Time) bool {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	_, ok := c.yearSet(day.Year())[day]
	return ok
}

// ForMonth returns the public-holiday dates in a month, ascending.
func (c *Calendar) ForMonth(year int, month time.Month) []time.Time {
	var out []time.Time
	for _, d := range HolidaysFor(year) {
		if d.Month() == month {
			out = append(out, d)
		}
	}
	return out
}
