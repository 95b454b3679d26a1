/*
Package wage is the core wage-calculation engine.

PURPOSE:
  This package contains the pure computation that turns raw shift intervals
  and a user's wage configuration into a categorized-hours and pay breakdown:
  time-of-day/weekend/holiday classification, overtime reclassification, pay,
  tax estimate and holiday-pay accrual.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A monetary amount (decimal-backed, never float)
  - Hours: A fractional hour count (decimal-backed)
  - Category: The five mutually-exclusive minute classifications
  - Segment: A classified sub-interval of a shift
  - HoursBreakdown: Per-category hours for a shift or a month

DESIGN PRINCIPLES:
  1. Purity: Every calculation is an explicit function of (shifts, settings).
     No globals, no I/O, no clocks.
  2. Precision: decimal.Decimal for money and hours; integer minutes for
     interval arithmetic.
  3. Type Safety: Strong typing for IDs prevents mixing user/shift/summary IDs.
  4. Engine-owned derived fields: hour/pay fields on Shift are recomputed,
     never independently settable.

SEE ALSO:
  - settings.go: WageSettings and validation
  - classify.go: Interval classification
  - overtime.go: Overtime reclassification
  - pay.go:      Money amounts from categorized hours
  - month.go:    Month aggregation
*/
package wage

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Monetary amount in the user's currency
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money         { return Money{Value: decimal.NewFromFloat(value)} }
func MoneyFromDecimal(d decimal.Decimal) Money { return Money{Value: d} }

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(b Money) Money            { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money            { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money  { return Money{Value: m.Value.Mul(s)} }
func (m Money) Neg() Money                   { return Money{Value: m.Value.Neg()} }
func (m Money) IsZero() bool                 { return m.Value.IsZero() }
func (m Money) IsNegative() bool             { return m.Value.IsNegative() }
func (m Money) Equal(b Money) bool           { return m.Value.Equal(b.Value) }

// Round returns the amount rounded to 2 decimal places, the precision all
// monetary outputs are reported at.
func (m Money) Round() Money { return Money{Value: m.Value.Round(2)} }

func (m Money) Float64() float64 { return m.Value.InexactFloat64() }
func (m Money) String() string   { return m.Value.StringFixed(2) }

// =============================================================================
// HOURS - Fractional hour count
// =============================================================================

type Hours struct {
	Value decimal.Decimal
}

var sixty = decimal.NewFromInt(60)

func NewHours(value float64) Hours { return Hours{Value: decimal.NewFromFloat(value)} }

// HoursFromMinutes converts integer minutes to hours without rounding.
func HoursFromMinutes(min int) Hours {
	return Hours{Value: decimal.NewFromInt(int64(min)).Div(sixty)}
}

func ZeroHours() Hours { return Hours{Value: decimal.Zero} }

func (h Hours) Add(b Hours) Hours           { return Hours{Value: h.Value.Add(b.Value)} }
func (h Hours) Sub(b Hours) Hours           { return Hours{Value: h.Value.Sub(b.Value)} }
func (h Hours) Mul(s decimal.Decimal) Hours { return Hours{Value: h.Value.Mul(s)} }
func (h Hours) IsZero() bool                { return h.Value.IsZero() }
func (h Hours) IsPositive() bool            { return h.Value.IsPositive() }
func (h Hours) Equal(b Hours) bool          { return h.Value.Equal(b.Value) }
func (h Hours) GreaterThan(b Hours) bool    { return h.Value.GreaterThan(b.Value) }

// Round returns the hours rounded to 4 decimal places, the precision all
// hour outputs are reported at.
func (h Hours) Round() Hours { return Hours{Value: h.Value.Round(4)} }

// Minutes returns the whole-minute equivalent (hours * 60, rounded).
func (h Hours) Minutes() int { return int(h.Value.Mul(sixty).Round(0).IntPart()) }

func (h Hours) Float64() float64 { return h.Value.InexactFloat64() }
func (h Hours) String() string   { return h.Value.StringFixed(4) }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type UserID string
type ShiftID string
type TemplateID string
type SummaryID string

// =============================================================================
// CATEGORY - Minute classification
// =============================================================================

// Category tags one classified minute of paid time. Every paid minute gets
// exactly one category; the priority order (holiday > weekend > night >
// evening > base) is enforced by the classifier.
type Category int

const (
	CategoryBase Category = iota
	CategoryEvening
	CategoryNight
	CategoryWeekend
	CategoryHoliday

	numCategories
)

func (c Category) String() string {
	switch c {
	case CategoryBase:
		return "base"
	case CategoryEvening:
		return "evening"
	case CategoryNight:
		return "night"
	case CategoryWeekend:
		return "weekend"
	case CategoryHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// =============================================================================
// SEGMENT - A classified, contiguous slice of paid shift time
// =============================================================================

// Segment is a half-open interval [StartMin, EndMin) of paid time, in minutes
// from the shift's anchor midnight, tagged with its category and the shift it
// came from. Segments for one day are disjoint and ordered.
type Segment struct {
	ShiftID  ShiftID
	StartMin int // minutes from the anchor date's midnight
	EndMin   int
	Category Category
}

func (s Segment) Minutes() int { return s.EndMin - s.StartMin }

// =============================================================================
// MINUTE TALLY - Integer per-category minute counts
// =============================================================================

// MinuteTally accumulates classified minutes before they are converted to
// reported hours. Overtime minutes are tracked separately; the invariant is
// sum(categories) + Overtime50 + Overtime100 == Total.
type MinuteTally struct {
	Categories  [numCategories]int
	Overtime50  int
	Overtime100 int
	Total       int
}

func (t *MinuteTally) AddSegment(s Segment) {
	t.Categories[s.Category] += s.Minutes()
	t.Total += s.Minutes()
}

// Reclassify moves n minutes out of a category into overtime.
func (t *MinuteTally) Reclassify(c Category, n int, to100 bool) {
	t.Categories[c] -= n
	if to100 {
		t.Overtime100 += n
	} else {
		t.Overtime50 += n
	}
}

func (t *MinuteTally) CategorySum() int {
	sum := 0
	for _, m := range t.Categories {
		sum += m
	}
	return sum
}

func (t *MinuteTally) Merge(o MinuteTally) {
	for i := range t.Categories {
		t.Categories[i] += o.Categories[i]
	}
	t.Overtime50 += o.Overtime50
	t.Overtime100 += o.Overtime100
	t.Total += o.Total
}

// =============================================================================
// HOURS BREAKDOWN - Reported per-category hours
// =============================================================================

// HoursBreakdown is the categorized-hours vector owned by the engine, used
// both per shift and summed per month.
type HoursBreakdown struct {
	Total       Hours
	Base        Hours
	Evening     Hours
	Night       Hours
	Weekend     Hours
	Holiday     Hours
	Overtime50  Hours
	Overtime100 Hours
}

func (t MinuteTally) Breakdown() HoursBreakdown {
	return HoursBreakdown{
		Total:       HoursFromMinutes(t.Total).Round(),
		Base:        HoursFromMinutes(t.Categories[CategoryBase]).Round(),
		Evening:     HoursFromMinutes(t.Categories[CategoryEvening]).Round(),
		Night:       HoursFromMinutes(t.Categories[CategoryNight]).Round(),
		Weekend:     HoursFromMinutes(t.Categories[CategoryWeekend]).Round(),
		Holiday:     HoursFromMinutes(t.Categories[CategoryHoliday]).Round(),
		Overtime50:  HoursFromMinutes(t.Overtime50).Round(),
		Overtime100: HoursFromMinutes(t.Overtime100).Round(),
	}
}

func (h HoursBreakdown) Add(o HoursBreakdown) HoursBreakdown {
	return HoursBreakdown{
		Total:       h.Total.Add(o.Total),
		Base:        h.Base.Add(o.Base),
		Evening:     h.Evening.Add(o.Evening),
		Night:       h.Night.Add(o.Night),
		Weekend:     h.Weekend.Add(o.Weekend),
		Holiday:     h.Holiday.Add(o.Holiday),
		Overtime50:  h.Overtime50.Add(o.Overtime50),
		Overtime100: h.Overtime100.Add(o.Overtime100),
	}
}
