/*
classify.go - Interval classification

PURPOSE:
  Splits one worked interval into disjoint sub-intervals tagged by exactly
  one category among {holiday, weekend, night, evening, base}, in that
  priority order. The sum of classified minutes always equals total paid
  minutes.

ALGORITHM:
  1. Resolve the absolute interval: end <= start means the shift crosses
     midnight into the next calendar day.
  2. Round both boundaries per the configured rounding strategy.
  3. Remove the pause. Unpaid pauses are cut out as a contiguous block whose
     placement is a CalcPolicy choice (midpoint by default); paid pauses stay
     in paid time but are excluded from worked time for overtime thresholds.
  4. Split the paid intervals at every point where the classification can
     change (day boundaries and window edges) and tag each atomic segment.
     Interval arithmetic throughout; nothing iterates minute by minute.

A minute that crosses midnight is classified against the calendar day it
actually falls on, so the tail of an overnight Friday shift counts as
weekend time.

SEE ALSO:
  - overtime.go: Reclassifies segment tails as overtime
  - calendar/:   HolidayCalendar implementation
*/
package wage

import (
	"sort"
	"time"
)

// =============================================================================
// HOLIDAY CALENDAR - Provided by the calendar package
// =============================================================================

// HolidayCalendar answers public-holiday lookups. Implementations must be
// pure functions of the date (cacheable per year).
type HolidayCalendar interface {
	// IsHoliday reports whether the calendar day is a public holiday.
	IsHoliday(day time.Time) bool

	// ForMonth returns the public-holiday dates in a month, ascending.
	ForMonth(year int, month time.Month) []time.Time
}

// =============================================================================
// CLASSIFICATION - Result of classifying one shift
// =============================================================================

// Classification is the classified view of a single shift. Segments are
// disjoint, ordered and cover exactly PaidMinutes.
type Classification struct {
	ShiftID ShiftID
	Day     time.Time // anchor day; overtime grouping uses this

	Segments      []Segment
	PaidMinutes   int
	WorkedMinutes int // paid minutes minus paid pause; drives overtime thresholds
	IsHoliday     bool
}

// Tally sums the segments into per-category minutes (pre-overtime).
func (c *Classification) Tally() MinuteTally {
	var t MinuteTally
	for _, s := range c.Segments {
		t.AddSegment(s)
	}
	return t
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// ClassifyShift classifies one shift against the settings windows and the
// holiday calendar. The input must be validated; settings must be valid.
func ClassifyShift(id ShiftID, in ShiftInput, ws *WageSettings, pol CalcPolicy, cal HolidayCalendar) *Classification {
	anchor, _ := ParseDate(in.Date)
	startClock, _ := ParseClock(in.StartTime)
	endClock, _ := ParseClock(in.EndTime)

	// Minutes from the anchor midnight. End at or before start crosses
	// midnight into the next day.
	startMin := int(startClock)
	endMin := int(endClock)
	if endMin <= startMin {
		endMin += minutesPerDay
	}

	// Round both boundaries in the configured direction.
	if ws.RoundingMinutes > 0 {
		startMin = ws.RoundingMethod.Apply(startMin, ws.RoundingMinutes)
		endMin = ws.RoundingMethod.Apply(endMin, ws.RoundingMinutes)
		if endMin < startMin {
			endMin = startMin
		}
	}

	total := endMin - startMin
	pause := in.PauseMin
	if pause > total {
		pause = total
	}

	paid := paidIntervals(startMin, endMin, pause, ws.PaidPause, pol.PausePlacement)

	c := &Classification{ShiftID: id, Day: anchor}
	for _, iv := range paid {
		c.Segments = append(c.Segments, splitAndTag(id, iv, anchor, ws, cal)...)
	}
	for _, s := range c.Segments {
		c.PaidMinutes += s.Minutes()
		if s.Category == CategoryHoliday {
			c.IsHoliday = true
		}
	}
	c.WorkedMinutes = total - pause
	return c
}

type interval struct{ start, end int }

// paidIntervals removes the pause block from [start, end) per policy.
func paidIntervals(start, end, pause int, paidPause bool, placement PausePlacement) []interval {
	if start == end {
		return nil
	}
	if paidPause || pause == 0 {
		return []interval{{start, end}}
	}

	var blockStart int
	switch placement {
	case PauseHead:
		blockStart = start
	case PauseTail:
		blockStart = end - pause
	default: // midpoint
		mid := start + (end-start)/2
		blockStart = mid - pause/2
		if blockStart < start {
			blockStart = start
		}
		if blockStart+pause > end {
			blockStart = end - pause
		}
	}
	blockEnd := blockStart + pause

	var out []interval
	if blockStart > start {
		out = append(out, interval{start, blockStart})
	}
	if end > blockEnd {
		out = append(out, interval{blockEnd, end})
	}
	return out
}

// splitAndTag cuts one paid interval at every potential category change and
// tags the resulting atomic segments, merging adjacent equal categories.
func splitAndTag(id ShiftID, iv interval, anchor time.Time, ws *WageSettings, cal HolidayCalendar) []Segment {
	cuts := map[int]struct{}{iv.start: {}, iv.end: {}}

	// Day boundaries inside the interval.
	for m := (iv.start/minutesPerDay + 1) * minutesPerDay; m < iv.end; m += minutesPerDay {
		cuts[m] = struct{}{}
	}
	// Window edges, on every day the interval touches.
	edges := append(ws.EveningWindow.Boundaries(), ws.NightWindow.Boundaries()...)
	firstDay := iv.start / minutesPerDay
	lastDay := iv.end / minutesPerDay
	for day := firstDay; day <= lastDay; day++ {
		for _, e := range edges {
			m := day*minutesPerDay + e
			if m > iv.start && m < iv.end {
				cuts[m] = struct{}{}
			}
		}
	}

	points := make([]int, 0, len(cuts))
	for m := range cuts {
		points = append(points, m)
	}
	sort.Ints(points)

	var out []Segment
	for i := 0; i+1 < len(points); i++ {
		seg := Segment{
			ShiftID:  id,
			StartMin: points[i],
			EndMin:   points[i+1],
			Category: classifyMinute(points[i], anchor, ws, cal),
		}
		if n := len(out); n > 0 && out[n-1].Category == seg.Category && out[n-1].EndMin == seg.StartMin {
			out[n-1].EndMin = seg.EndMin
		} else {
			out = append(out, seg)
		}
	}
	return out
}

// classifyMinute tags a minute offset by priority: holiday beats weekend
// beats night beats evening beats base.
func classifyMinute(m int, anchor time.Time, ws *WageSettings, cal HolidayCalendar) Category {
	day := anchor.AddDate(0, 0, m/minutesPerDay)
	switch {
	case cal != nil && cal.IsHoliday(day):
		return CategoryHoliday
	case IsWeekend(day):
		return CategoryWeekend
	}
	mod := ClockTime(m % minutesPerDay)
	switch {
	case ws.NightWindow.Contains(mod):
		return CategoryNight
	case ws.EveningWindow.Contains(mod):
		return CategoryEvening
	default:
		return CategoryBase
	}
}
