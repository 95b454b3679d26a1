/*
shift.go - Shift entity and month result types

PURPOSE:
  Shift carries the raw fields a user edits (date, times, pause, template,
  note) and the derived fields the engine owns. Derived fields are recomputed
  whenever the shift or the user's wage settings change; they are never
  hand-edited. The only way to produce them is through the engine.

LIFECYCLE:
  ShiftInput (raw, externally mutable)
    -> classifier + overtime + pay
    -> Shift with Calc populated (persisted for quick display)

MonthCalcResult is the ephemeral output of calculate(year, month); it is
recomputed on every query and never cached across settings changes.
MonthSummary is the persisted snapshot of one, with the save/lock lifecycle.
*/
package wage

import (
	"time"
)

// =============================================================================
// SHIFT - Raw fields plus engine-owned derived fields
// =============================================================================

// ShiftInput holds the externally mutable fields of a shift.
type ShiftInput struct {
	Date       string // YYYY-MM-DD, the day the shift is anchored to
	StartTime  string // HH:MM
	EndTime    string // HH:MM; numerically <= start means the shift crosses midnight
	PauseMin   int
	TemplateID *TemplateID
	Note       string
}

// Validate parses and range-checks the raw fields.
func (in ShiftInput) Validate() error {
	if _, err := ParseDate(in.Date); err != nil {
		return &shiftFieldError{field: "date", err: err}
	}
	if _, err := ParseClock(in.StartTime); err != nil {
		return &shiftFieldError{field: "start_time", err: err}
	}
	if _, err := ParseClock(in.EndTime); err != nil {
		return &shiftFieldError{field: "end_time", err: err}
	}
	if in.PauseMin < 0 {
		return &shiftFieldError{field: "pause_min", err: ErrInvalidShift}
	}
	return nil
}

type shiftFieldError struct {
	field string
	err   error
}

func (e *shiftFieldError) Error() string { return "invalid shift: " + e.field + ": " + e.err.Error() }
func (e *shiftFieldError) Unwrap() error { return ErrInvalidShift }

// ShiftCalc holds the derived fields owned by the engine.
type ShiftCalc struct {
	Hours     HoursBreakdown
	GrossPay  Money
	IsHoliday bool
}

// Shift is a logged work interval with its computed breakdown.
type Shift struct {
	ID     ShiftID
	UserID UserID
	ShiftInput
	Calc      ShiftCalc
	CreatedAt time.Time
}

// Day returns the anchor calendar day. Raw fields must be validated first.
func (s *Shift) Day() time.Time {
	d, _ := ParseDate(s.Date)
	return d
}

// =============================================================================
// MONTH CALC RESULT - Ephemeral output of calculate(year, month)
// =============================================================================

type MonthCalcResult struct {
	Year  int
	Month time.Month

	Hours       HoursBreakdown
	ShiftsCount int
	Holidays    []string // ISO dates of public holidays in the month

	GrossPay         Money
	TaxDeduction     Money
	NetPay           Money
	HolidayPayBase   Money
	HolidayPayEarned Money
}

// =============================================================================
// MONTH SUMMARY - Persisted snapshot with the save/lock lifecycle
// =============================================================================

// MonthSummary is a frozen copy of a MonthCalcResult. It may be re-saved
// while unlocked; locking is one-way and makes it immutable.
type MonthSummary struct {
	ID     SummaryID
	UserID UserID
	Year   int
	Month  time.Month

	Hours HoursBreakdown

	GrossPay         Money
	TaxDeduction     Money
	NetPay           Money
	HolidayPayBase   Money
	HolidayPayEarned Money

	IsLocked  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthSummary freezes a calc result into a summary for a user.
func NewMonthSummary(userID UserID, r *MonthCalcResult) *MonthSummary {
	return &MonthSummary{
		UserID:           userID,
		Year:             r.Year,
		Month:            r.Month,
		Hours:            r.Hours,
		GrossPay:         r.GrossPay,
		TaxDeduction:     r.TaxDeduction,
		NetPay:           r.NetPay,
		HolidayPayBase:   r.HolidayPayBase,
		HolidayPayEarned: r.HolidayPayEarned,
	}
}
