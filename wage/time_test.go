package wage

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeWindowContains(t *testing.T) {
	// GIVEN a plain window and one wrapping past midnight
	evening := TimeWindow{From: MustClock("18:00"), To: MustClock("21:00")}
	night := TimeWindow{From: MustClock("21:00"), To: MustClock("06:00")}

	// THEN windows are half-open [From, To)
	if !evening.Contains(MustClock("18:00")) {
		t.Error("window start should be included")
	}
	if evening.Contains(MustClock("21:00")) {
		t.Error("window end should be excluded")
	}

	// AND a wrapping window covers both sides of midnight
	for _, c := range []string{"21:00", "23:59", "00:00", "05:59"} {
		if !night.Contains(MustClock(c)) {
			t.Errorf("night window should contain %s", c)
		}
	}
	for _, c := range []string{"06:00", "12:00", "20:59"} {
		if night.Contains(MustClock(c)) {
			t.Errorf("night window should not contain %s", c)
		}
	}

	// AND an empty window contains nothing
	empty := TimeWindow{From: MustClock("12:00"), To: MustClock("12:00")}
	if empty.Contains(MustClock("12:00")) {
		t.Error("empty window should contain nothing")
	}
}

func TestISOWeekSpansYearBoundary(t *testing.T) {
	// GIVEN days around new year 2024 (Jan 1 is a Monday)
	if k := ISOWeek(Date(2023, time.December, 31)); k != "2023-W52" {
		t.Errorf("Dec 31 2023 = %s, want 2023-W52", k)
	}
	if k := ISOWeek(Date(2024, time.January, 1)); k != "2024-W01" {
		t.Errorf("Jan 1 2024 = %s, want 2024-W01", k)
	}
	// Monday through Sunday share one key
	if ISOWeek(Date(2024, time.January, 8)) != ISOWeek(Date(2024, time.January, 14)) {
		t.Error("Monday and Sunday of the same ISO week should share a key")
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2024, time.February)
	if !first.Equal(Date(2024, time.February, 1)) {
		t.Errorf("first = %s", FormatDate(first))
	}
	// 2024 is a leap year
	if !last.Equal(Date(2024, time.February, 29)) {
		t.Errorf("last = %s, want 2024-02-29", FormatDate(last))
	}
}

func TestShiftInputValidate(t *testing.T) {
	valid := shiftOn("2024-01-10", "08:00", "16:00", 30)
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name string
		in   ShiftInput
	}{
		{"bad date", shiftOn("10.01.2024", "08:00", "16:00", 0)},
		{"bad start", shiftOn("2024-01-10", "8am", "16:00", 0)},
		{"bad end", shiftOn("2024-01-10", "08:00", "25:00", 0)},
		{"negative pause", shiftOn("2024-01-10", "08:00", "16:00", -5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !IsClientError(err) {
				t.Errorf("error %v should map to a client error", err)
			}
		})
	}
}
