/*
month.go - Month calculation

PURPOSE:
  The pure month computation: classify every shift in the month, allocate
  daily and weekly overtime, price each shift, and sum the results into a
  MonthCalcResult. Also the single-shift recompute used whenever a shift is
  written.

Calling this twice with unchanged shifts and settings returns identical
results; nothing here reads clocks or mutates its inputs.
*/
package wage

import (
	"time"
)

// CalculateMonth computes the month view from a snapshot of the user's
// shifts and settings. Shifts outside (year, month) are ignored; weekly
// overtime groups the month's shifts by ISO week.
func CalculateMonth(shifts []Shift, ws *WageSettings, pol CalcPolicy, cal HolidayCalendar, year int, month time.Month) *MonthCalcResult {
	var (
		classifications []*Classification
		inMonth         []*Shift
	)
	for i := range shifts {
		s := &shifts[i]
		day, err := ParseDate(s.Date)
		if err != nil || day.Year() != year || day.Month() != month {
			continue
		}
		inMonth = append(inMonth, s)
		classifications = append(classifications, ClassifyShift(s.ID, s.ShiftInput, ws, pol, cal))
	}

	tallies := AllocateOvertime(classifications, ws, pol)

	var totalTally MinuteTally
	gross := ZeroMoney()
	for _, c := range classifications {
		t := tallies[c.ShiftID]
		totalTally.Merge(*t)
		gross = gross.Add(CalculatePay(t.Breakdown(), ws).Gross)
	}

	mp := CalculateMonthPay(gross.Round(), ws, pol)

	result := &MonthCalcResult{
		Year:             year,
		Month:            month,
		Hours:            totalTally.Breakdown(),
		ShiftsCount:      len(inMonth),
		Holidays:         []string{},
		GrossPay:         gross.Round(),
		TaxDeduction:     mp.TaxDeduction,
		NetPay:           mp.NetPay,
		HolidayPayBase:   mp.HolidayPayBase,
		HolidayPayEarned: mp.HolidayPayEarned,
	}
	if cal != nil {
		for _, d := range cal.ForMonth(year, month) {
			result.Holidays = append(result.Holidays, FormatDate(d))
		}
	}
	return result
}

// RecomputeShift computes a shift's derived fields in isolation, using the
// daily threshold only. Weekly overtime needs the rest of the week and is
// applied by CalculateMonth; stored per-shift fields carry the shift-local
// view for quick display.
func RecomputeShift(id ShiftID, in ShiftInput, ws *WageSettings, pol CalcPolicy, cal HolidayCalendar) ShiftCalc {
	c := ClassifyShift(id, in, ws, pol, cal)
	tallies := AllocateOvertime([]*Classification{c}, ws, pol)
	breakdown := tallies[id].Breakdown()
	return ShiftCalc{
		Hours:     breakdown,
		GrossPay:  CalculatePay(breakdown, ws).Gross,
		IsHoliday: c.IsHoliday,
	}
}
