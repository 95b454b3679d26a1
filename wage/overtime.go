/*
overtime.go - Overtime reclassification

PURPOSE:
  Re-labels hours as overtime once daily or weekly worked-hour thresholds
  are exceeded, without changing total hours. Overtime is end-of-shift time:
  reclassified minutes are taken from the last-occurring classified minutes
  of the day, reducing each category by exactly its share of the
  reclassified span, so the category sum invariant holds by construction.

POLICY:
  - Beyond the daily threshold: 50% overtime.
  - Beyond the daily cap (CalcPolicy.OvertimeDailyCap, default twice the
    threshold): 100% overtime. The cap takes the very tail of the day.
  - Beyond the weekly threshold (ISO week, Mon-Sun): 50% overtime, taken
    from the tail of the week. An hour qualifying under both the daily and
    weekly threshold is counted once.

SEE ALSO:
  - classify.go: Produces the segments consumed here
  - month.go:    Drives allocation per day and per week
*/
package wage

import (
	"sort"
	"time"
)

// ShiftTallies maps each shift to its post-allocation minute tally.
type ShiftTallies map[ShiftID]*MinuteTally

// dayState tracks one day's remaining non-overtime segments. Reclassified
// minutes are popped off the tail, so whatever remains is plain time.
type dayState struct {
	day      time.Time
	segments []Segment
	worked   int
	otTaken  int
}

// AllocateOvertime classifies overtime across a set of shifts, grouping by
// anchor day for the daily threshold and by ISO week for the weekly one.
// Returns per-shift tallies whose minutes sum to each shift's paid minutes.
func AllocateOvertime(classifications []*Classification, ws *WageSettings, pol CalcPolicy) ShiftTallies {
	tallies := make(ShiftTallies, len(classifications))

	// Group by anchor day, preserving segment time order within the day.
	byDay := make(map[time.Time]*dayState)
	for _, c := range classifications {
		t := c.Tally()
		tallies[c.ShiftID] = &t

		st, ok := byDay[c.Day]
		if !ok {
			st = &dayState{day: c.Day}
			byDay[c.Day] = st
		}
		st.segments = append(st.segments, c.Segments...)
		st.worked += c.WorkedMinutes
	}

	days := make([]*dayState, 0, len(byDay))
	for _, st := range byDay {
		sort.Slice(st.segments, func(i, j int) bool { return st.segments[i].StartMin < st.segments[j].StartMin })
		days = append(days, st)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	dailyThreshold := int(ws.OvertimeDailyThreshold.Mul(sixty).Round(0).IntPart())
	dailyCap := pol.dailyCapMinutes(ws)
	if dailyCap < dailyThreshold {
		dailyCap = dailyThreshold
	}

	for _, st := range days {
		ot := st.worked - dailyThreshold
		if ot <= 0 {
			continue
		}
		ot100 := st.worked - dailyCap
		if ot100 < 0 {
			ot100 = 0
		}
		// The very tail of the day is the furthest beyond the cap.
		st.takeFromTail(tallies, ot100, true)
		st.takeFromTail(tallies, ot-ot100, false)
	}

	// Weekly pass: group days by ISO week and pull any remaining excess
	// from the tail of the week.
	weeklyThreshold := int(ws.OvertimeWeeklyThreshold.Mul(sixty).Round(0).IntPart())
	byWeek := make(map[string][]*dayState)
	var weekKeys []string
	for _, st := range days {
		k := ISOWeek(st.day)
		if _, ok := byWeek[k]; !ok {
			weekKeys = append(weekKeys, k)
		}
		byWeek[k] = append(byWeek[k], st)
	}
	sort.Strings(weekKeys)

	for _, k := range weekKeys {
		week := byWeek[k]
		weekWorked, weekOT := 0, 0
		for _, st := range week {
			weekWorked += st.worked
			weekOT += st.otTaken
		}
		// Hours already reclassified by the daily pass count toward the
		// weekly threshold only once.
		extra := weekWorked - weeklyThreshold - weekOT
		if extra <= 0 {
			continue
		}
		for i := len(week) - 1; i >= 0 && extra > 0; i-- {
			extra -= week[i].takeFromTail(tallies, extra, false)
		}
	}

	return tallies
}

// takeFromTail reclassifies up to n minutes from the day's tail into
// overtime, attributing reductions to the owning shifts pro-rata by each
// category's share of the reclassified span. Returns the minutes taken.
func (st *dayState) takeFromTail(tallies ShiftTallies, n int, to100 bool) int {
	taken := 0
	for n > 0 && len(st.segments) > 0 {
		seg := &st.segments[len(st.segments)-1]
		take := seg.Minutes()
		if take > n {
			take = n
		}
		tallies[seg.ShiftID].Reclassify(seg.Category, take, to100)
		seg.EndMin -= take
		if seg.Minutes() == 0 {
			st.segments = st.segments[:len(st.segments)-1]
		}
		n -= take
		taken += take
	}
	st.otTaken += taken
	return taken
}
