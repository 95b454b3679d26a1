/*
pay.go - Money amounts from categorized hours

PURPOSE:
  Converts a categorized-hours vector plus WageSettings into gross pay, and
  a month's gross into tax estimate, net pay and holiday-pay accrual.

RULES:
  - Base pay = base hours x hourly rate.
  - Allowance pay per category = hours x (flat value, or rate x percent).
  - Custom allowances apply to total hours, in list order, additively.
  - Overtime multipliers are absolute: a rate of 1.5 pays 150% of base rate.
  - Tax and holiday pay are estimates, not a statutory payroll engine.
  - Holiday pay is reported separately and never added to net pay.
*/
package wage

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// =============================================================================
// PAY BREAKDOWN
// =============================================================================

// PayBreakdown itemizes one shift's (or month's) gross pay.
type PayBreakdown struct {
	Base        Money
	Evening     Money
	Night       Money
	Weekend     Money
	Holiday     Money
	Custom      Money
	Overtime50  Money
	Overtime100 Money
	Gross       Money
}

// CalculatePay prices a categorized-hours vector.
func CalculatePay(h HoursBreakdown, ws *WageSettings) PayBreakdown {
	rate := ws.HourlyRate

	p := PayBreakdown{
		Base:    Money{Value: h.Base.Value.Mul(rate)},
		Evening: Money{Value: h.Evening.Value.Mul(ws.Evening.PerHour(rate).Value)},
		Night:   Money{Value: h.Night.Value.Mul(ws.Night.PerHour(rate).Value)},
		Weekend: Money{Value: h.Weekend.Value.Mul(ws.Weekend.PerHour(rate).Value)},
		Holiday: Money{Value: h.Holiday.Value.Mul(ws.Holiday.PerHour(rate).Value)},
		Overtime50: Money{
			Value: h.Overtime50.Value.Mul(rate).Mul(ws.Overtime50Rate),
		},
		Overtime100: Money{
			Value: h.Overtime100.Value.Mul(rate).Mul(ws.Overtime100Rate),
		},
	}

	// Custom allowances: total hours, list order, no compounding.
	custom := ZeroMoney()
	for _, c := range ws.Custom {
		perHour := Allowance{Type: c.Type, Value: c.Value}.PerHour(rate)
		custom = custom.Add(Money{Value: h.Total.Value.Mul(perHour.Value)})
	}
	p.Custom = custom

	p.Gross = p.Base.
		Add(p.Evening).Add(p.Night).Add(p.Weekend).Add(p.Holiday).
		Add(p.Custom).Add(p.Overtime50).Add(p.Overtime100).
		Round()
	return p
}

// =============================================================================
// MONTH-LEVEL AMOUNTS
// =============================================================================

// MonthPay holds the month-level derived amounts.
type MonthPay struct {
	TaxDeduction     Money
	NetPay           Money
	HolidayPayBase   Money
	HolidayPayEarned Money
}

// CalculateMonthPay derives tax, net and holiday-pay accrual from a month's
// gross. The accrual base is the month's gross unless the policy supplies an
// external base.
func CalculateMonthPay(gross Money, ws *WageSettings, pol CalcPolicy) MonthPay {
	tax := Money{Value: gross.Value.Mul(ws.TaxPercent).Div(hundred)}.Round()

	base := gross
	if pol.HolidayPayBase != nil {
		base = *pol.HolidayPayBase
	}
	earned := Money{Value: base.Value.Mul(ws.HolidayPayPercent).Div(hundred)}.Round()

	return MonthPay{
		TaxDeduction:     tax,
		NetPay:           gross.Sub(tax).Round(),
		HolidayPayBase:   base.Round(),
		HolidayPayEarned: earned,
	}
}
