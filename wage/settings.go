/*
settings.go - Wage configuration and validation

PURPOSE:
  WageSettings is the per-user configuration every calculation takes as an
  explicit parameter: hourly rate, allowance bands, overtime thresholds,
  pause, rounding, tax and holiday-pay percentages. CalcPolicy holds the
  engine-level policy knobs that are deliberately configuration-driven
  rather than hard-coded (pause placement, overtime-100 cap, holiday-pay
  base).

VALIDATION:
  Invalid settings are rejected at write time via Validate(); the engine
  never runs with an invalid configuration.

SEE ALSO:
  - classify.go: Consumes the windows, pause and rounding fields
  - overtime.go: Consumes the thresholds and CalcPolicy cap
  - pay.go:      Consumes rates, allowances and percentages
*/
package wage

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ALLOWANCES
// =============================================================================

// AllowanceType selects how an allowance value is interpreted.
type AllowanceType string

const (
	// AllowanceFlat: value is an absolute amount per hour.
	AllowanceFlat AllowanceType = "flat"
	// AllowancePercent: value is a percentage of the base hourly rate.
	AllowancePercent AllowanceType = "percent"
)

func (t AllowanceType) Valid() bool {
	return t == AllowanceFlat || t == AllowancePercent
}

// Allowance is one allowance kind: per-hour extra pay for a category.
type Allowance struct {
	Type  AllowanceType
	Value decimal.Decimal
}

// PerHour returns the extra pay per hour this allowance yields on top of
// the given base hourly rate.
func (a Allowance) PerHour(hourlyRate decimal.Decimal) Money {
	if a.Type == AllowancePercent {
		return Money{Value: hourlyRate.Mul(a.Value).Div(decimal.NewFromInt(100))}
	}
	return Money{Value: a.Value}
}

// CustomAllowance is a named extra applied to total hours, in list order,
// summed additively with no compounding.
type CustomAllowance struct {
	Name  string
	Type  AllowanceType
	Value decimal.Decimal
}

// =============================================================================
// ROUNDING
// =============================================================================

// RoundingMethod selects how shift boundaries are rounded when
// RoundingMinutes is nonzero. A strategy enum, not boolean flags, so further
// methods slot in without changing call sites.
type RoundingMethod string

const (
	RoundNearest RoundingMethod = "nearest" // ties round up
	RoundUp      RoundingMethod = "up"
	RoundDown    RoundingMethod = "down"
)

func (m RoundingMethod) Valid() bool {
	return m == RoundNearest || m == RoundUp || m == RoundDown
}

// Apply rounds a minute offset to a multiple of unit in the configured
// direction. Both shift boundaries are rounded the same way.
func (m RoundingMethod) Apply(minutes, unit int) int {
	if unit <= 0 {
		return minutes
	}
	switch m {
	case RoundUp:
		return ((minutes + unit - 1) / unit) * unit
	case RoundDown:
		return (minutes / unit) * unit
	default: // nearest, ties up
		return ((minutes + unit/2) / unit) * unit
	}
}

// =============================================================================
// WAGE SETTINGS - One per user
// =============================================================================

type WageSettings struct {
	HourlyRate decimal.Decimal

	// Allowance bands. Evening and night carry time-of-day windows; weekend
	// and holiday apply per day classification.
	Evening       Allowance
	EveningWindow TimeWindow
	Night         Allowance
	NightWindow   TimeWindow
	Weekend       Allowance
	Holiday       Allowance

	// Custom allowances applied to total hours, in list order.
	Custom []CustomAllowance

	// Overtime thresholds (hours) and rate multipliers. Multipliers are
	// absolute (1.5 means 150% of base rate), not increments.
	OvertimeDailyThreshold  decimal.Decimal
	OvertimeWeeklyThreshold decimal.Decimal
	Overtime50Rate          decimal.Decimal
	Overtime100Rate         decimal.Decimal

	// Pause handling. A paid pause stays in paid classified time but is
	// still excluded from worked time for overtime thresholds.
	DefaultPauseMin int
	PaidPause       bool

	// Boundary rounding. Zero minutes disables rounding.
	RoundingMinutes int
	RoundingMethod  RoundingMethod

	// Estimates only; not a statutory payroll engine.
	TaxPercent        decimal.Decimal
	HolidayPayPercent decimal.Decimal
}

// DefaultSettings returns the configuration used for users who have not
// saved their own yet.
func DefaultSettings() *WageSettings {
	return &WageSettings{
		HourlyRate:              decimal.NewFromInt(200),
		Evening:                 Allowance{Type: AllowanceFlat, Value: decimal.Zero},
		EveningWindow:           TimeWindow{From: MustClock("18:00"), To: MustClock("21:00")},
		Night:                   Allowance{Type: AllowanceFlat, Value: decimal.Zero},
		NightWindow:             TimeWindow{From: MustClock("21:00"), To: MustClock("06:00")},
		Weekend:                 Allowance{Type: AllowanceFlat, Value: decimal.Zero},
		Holiday:                 Allowance{Type: AllowanceFlat, Value: decimal.Zero},
		OvertimeDailyThreshold:  decimal.NewFromInt(9),
		OvertimeWeeklyThreshold: decimal.NewFromInt(40),
		Overtime50Rate:          decimal.NewFromFloat(1.5),
		Overtime100Rate:         decimal.NewFromFloat(2.0),
		DefaultPauseMin:         30,
		PaidPause:               false,
		RoundingMinutes:         0,
		RoundingMethod:          RoundNearest,
		TaxPercent:              decimal.NewFromInt(25),
		HolidayPayPercent:       decimal.NewFromInt(12),
	}
}

// Validate rejects malformed configuration. Called by every write path;
// calculations may assume a validated settings value.
func (ws *WageSettings) Validate() error {
	if ws.HourlyRate.IsNegative() {
		return &SettingsError{Field: "hourly_rate", Reason: "must be non-negative"}
	}
	allowances := []struct {
		name string
		a    Allowance
	}{
		{"evening_allowance", ws.Evening},
		{"night_allowance", ws.Night},
		{"weekend_allowance", ws.Weekend},
		{"holiday_allowance", ws.Holiday},
	}
	for _, entry := range allowances {
		if !entry.a.Type.Valid() {
			return &SettingsError{Field: entry.name, Reason: "type must be flat or percent"}
		}
		if entry.a.Value.IsNegative() {
			return &SettingsError{Field: entry.name, Reason: "value must be non-negative"}
		}
	}
	for _, c := range ws.Custom {
		if c.Name == "" {
			return &SettingsError{Field: "custom_allowances", Reason: "name is required"}
		}
		if !c.Type.Valid() {
			return &SettingsError{Field: "custom_allowances", Reason: "type must be flat or percent"}
		}
		if c.Value.IsNegative() {
			return &SettingsError{Field: "custom_allowances", Reason: "value must be non-negative"}
		}
	}
	if !ws.EveningWindow.Valid() {
		return &SettingsError{Field: "evening_window", Reason: "invalid time of day"}
	}
	if !ws.NightWindow.Valid() {
		return &SettingsError{Field: "night_window", Reason: "invalid time of day"}
	}
	if ws.OvertimeDailyThreshold.IsNegative() || ws.OvertimeWeeklyThreshold.IsNegative() {
		return &SettingsError{Field: "overtime_threshold", Reason: "must be non-negative"}
	}
	one := decimal.NewFromInt(1)
	if ws.Overtime50Rate.LessThan(one) || ws.Overtime100Rate.LessThan(one) {
		return &SettingsError{Field: "overtime_rate", Reason: "multiplier must be >= 1"}
	}
	if ws.DefaultPauseMin < 0 {
		return &SettingsError{Field: "default_pause_min", Reason: "must be non-negative"}
	}
	if ws.RoundingMinutes < 0 {
		return &SettingsError{Field: "rounding_minutes", Reason: "must be non-negative"}
	}
	if !ws.RoundingMethod.Valid() {
		return &SettingsError{Field: "rounding_method", Reason: "must be nearest, up or down"}
	}
	if ws.TaxPercent.IsNegative() || ws.HolidayPayPercent.IsNegative() {
		return &SettingsError{Field: "percent", Reason: "must be non-negative"}
	}
	return nil
}

// =============================================================================
// CALC POLICY - Engine-level policy knobs
// =============================================================================

// PausePlacement selects where an unpaid pause block is removed from the
// interval for classification purposes.
type PausePlacement string

const (
	PauseMidpoint PausePlacement = "midpoint" // contiguous block at interval midpoint
	PauseTail     PausePlacement = "tail"     // block at end of interval
	PauseHead     PausePlacement = "head"     // block at start of interval
)

// CalcPolicy carries the policy choices the product contract leaves open.
// Either interpretation is a config change here, not a code change.
type CalcPolicy struct {
	// Where the unpaid pause block sits inside the interval.
	PausePlacement PausePlacement

	// Daily worked hours beyond this cap are 100% overtime instead of 50%.
	// Zero means twice the daily threshold.
	OvertimeDailyCap decimal.Decimal

	// Holiday-pay accrual base. Nil means the current period's gross pay;
	// set to supply an external base (e.g. prior-year earnings).
	HolidayPayBase *Money
}

func DefaultCalcPolicy() CalcPolicy {
	return CalcPolicy{PausePlacement: PauseMidpoint}
}

// dailyCapMinutes resolves the overtime-100 cap for a given settings value.
func (p CalcPolicy) dailyCapMinutes(ws *WageSettings) int {
	cap := p.OvertimeDailyCap
	if cap.IsZero() {
		cap = ws.OvertimeDailyThreshold.Mul(decimal.NewFromInt(2))
	}
	return int(cap.Mul(sixty).Round(0).IntPart())
}
