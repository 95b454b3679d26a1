package wage

import (
	"testing"
)

func classify(t *testing.T, ws *WageSettings, pol CalcPolicy, shifts ...Shift) []*Classification {
	t.Helper()
	out := make([]*Classification, 0, len(shifts))
	for i := range shifts {
		out = append(out, ClassifyShift(shifts[i].ID, shifts[i].ShiftInput, ws, pol, noHolidays()))
	}
	return out
}

func mkShift(id, date, start, end string, pause int) Shift {
	return Shift{ID: ShiftID(id), ShiftInput: shiftOn(date, start, end, pause)}
}

func TestOvertimeNoneAtExactThreshold(t *testing.T) {
	// GIVEN a shift worked exactly at the 9h daily threshold
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol, mkShift("s1", "2024-01-10", "08:00", "17:00", 0))

	// WHEN allocating overtime
	tallies := AllocateOvertime(cs, ws, pol)

	// THEN nothing is reclassified
	tl := tallies["s1"]
	if tl.Overtime50 != 0 || tl.Overtime100 != 0 {
		t.Errorf("at-threshold shift got OT50=%d OT100=%d, want 0/0", tl.Overtime50, tl.Overtime100)
	}
}

func TestOvertimeOneMinuteOverThreshold(t *testing.T) {
	// GIVEN a shift worked one minute past the daily threshold
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol, mkShift("s1", "2024-01-10", "08:00", "17:01", 0))

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN exactly one minute becomes 50% overtime
	tl := tallies["s1"]
	if tl.Overtime50 != 1 {
		t.Errorf("OT50 = %d minutes, want 1", tl.Overtime50)
	}
	if tl.Overtime100 != 0 {
		t.Errorf("OT100 = %d minutes, want 0", tl.Overtime100)
	}
}

func TestOvertimeTakenFromShiftTail(t *testing.T) {
	// GIVEN an 11h weekday shift reaching one hour into the evening window
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol, mkShift("s1", "2024-01-10", "08:00", "19:00", 0))

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN the 2h excess is the end of the shift: the evening hour plus the
	// last base hour, while earlier base time is untouched.
	tl := tallies["s1"]
	if tl.Overtime50 != 120 {
		t.Fatalf("OT50 = %d minutes, want 120", tl.Overtime50)
	}
	if tl.Categories[CategoryEvening] != 0 {
		t.Errorf("evening minutes = %d, want 0 (reclassified)", tl.Categories[CategoryEvening])
	}
	if tl.Categories[CategoryBase] != 540 {
		t.Errorf("base minutes = %d, want 540", tl.Categories[CategoryBase])
	}
	// Total hours never change, only labels.
	if tl.CategorySum()+tl.Overtime50+tl.Overtime100 != tl.Total {
		t.Error("tally invariant broken after reclassification")
	}
}

func TestOvertimeBeyondCapIsDouble(t *testing.T) {
	// GIVEN a 23h day, far past the default cap of twice the 9h threshold
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol, mkShift("s1", "2024-01-10", "00:00", "23:00", 0))

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN 9h over the threshold is OT50 and the 5h beyond the cap is OT100,
	// with the very tail of the day carrying the 100% label.
	tl := tallies["s1"]
	if tl.Overtime100 != 300 {
		t.Errorf("OT100 = %d minutes, want 300", tl.Overtime100)
	}
	if tl.Overtime50 != 540 {
		t.Errorf("OT50 = %d minutes, want 540", tl.Overtime50)
	}
	if tl.CategorySum()+tl.Overtime50+tl.Overtime100 != tl.Total {
		t.Error("tally invariant broken")
	}
}

func TestOvertimeCustomDailyCap(t *testing.T) {
	// GIVEN a policy lowering the OT100 cap to 10h
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	pol.OvertimeDailyCap = dec(10)
	cs := classify(t, ws, pol, mkShift("s1", "2024-01-10", "06:00", "18:00", 0))

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN a 12h day yields 1h OT50 (9h..10h) and 2h OT100 (10h..12h)
	tl := tallies["s1"]
	if tl.Overtime50 != 60 {
		t.Errorf("OT50 = %d minutes, want 60", tl.Overtime50)
	}
	if tl.Overtime100 != 120 {
		t.Errorf("OT100 = %d minutes, want 120", tl.Overtime100)
	}
}

func TestOvertimeTwoShiftsSameDayShareThreshold(t *testing.T) {
	// GIVEN two 6h shifts on the same day (12h worked total)
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol,
		mkShift("am", "2024-01-10", "06:00", "12:00", 0),
		mkShift("pm", "2024-01-10", "12:30", "18:30", 0),
	)

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN the 3h excess lands entirely on the later shift's tail
	if got := tallies["am"].Overtime50; got != 0 {
		t.Errorf("morning shift OT50 = %d, want 0", got)
	}
	if got := tallies["pm"].Overtime50; got != 180 {
		t.Errorf("afternoon shift OT50 = %d, want 180", got)
	}
}

func TestOvertimeWeeklyThreshold(t *testing.T) {
	// GIVEN five 9h days in one ISO week: no daily overtime, but 45h worked
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol,
		mkShift("mon", "2024-01-08", "08:00", "17:00", 0),
		mkShift("tue", "2024-01-09", "08:00", "17:00", 0),
		mkShift("wed", "2024-01-10", "08:00", "17:00", 0),
		mkShift("thu", "2024-01-11", "08:00", "17:00", 0),
		mkShift("fri", "2024-01-12", "08:00", "17:00", 0),
	)

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN the 5h past the 40h weekly threshold comes off the week's tail
	if got := tallies["fri"].Overtime50; got != 300 {
		t.Errorf("friday OT50 = %d minutes, want 300", got)
	}
	for _, id := range []ShiftID{"mon", "tue", "wed", "thu"} {
		if got := tallies[id].Overtime50; got != 0 {
			t.Errorf("%s OT50 = %d, want 0", id, got)
		}
	}
}

func TestOvertimeDailyCountsOnceAgainstWeekly(t *testing.T) {
	// GIVEN a 41h week where 1h was already daily overtime on Monday
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol,
		mkShift("mon", "2024-01-08", "08:00", "18:00", 0), // 10h, 1h daily OT
		mkShift("tue", "2024-01-09", "08:00", "17:00", 0),
		mkShift("wed", "2024-01-10", "08:00", "17:00", 0),
		mkShift("thu", "2024-01-11", "08:00", "17:00", 0),
		mkShift("fri", "2024-01-12", "08:00", "12:00", 0), // 4h
	)

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN the weekly pass adds nothing: the hour over 40 is the same hour
	// the daily pass already reclassified.
	totalOT := 0
	for _, tl := range tallies {
		totalOT += tl.Overtime50 + tl.Overtime100
	}
	if totalOT != 60 {
		t.Errorf("total overtime = %d minutes, want 60", totalOT)
	}
	if got := tallies["mon"].Overtime50; got != 60 {
		t.Errorf("monday OT50 = %d, want 60", got)
	}
}

func TestOvertimeSeparateISOWeeks(t *testing.T) {
	// GIVEN 45h spread across a week boundary (Sunday vs Monday)
	ws := DefaultSettings()
	pol := DefaultCalcPolicy()
	cs := classify(t, ws, pol,
		mkShift("sun", "2024-01-07", "08:00", "17:00", 0), // week 1
		mkShift("mon", "2024-01-08", "08:00", "17:00", 0), // week 2
		mkShift("tue", "2024-01-09", "08:00", "17:00", 0),
		mkShift("wed", "2024-01-10", "08:00", "17:00", 0),
		mkShift("thu", "2024-01-11", "08:00", "17:00", 0),
	)

	tallies := AllocateOvertime(cs, ws, pol)

	// THEN neither week crosses 40h and no overtime is allocated
	for id, tl := range tallies {
		if tl.Overtime50 != 0 || tl.Overtime100 != 0 {
			t.Errorf("%s got overtime, want none (weeks are independent)", id)
		}
	}
}
