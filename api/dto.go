/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-backed domain model from the external API contract:
  hours and money cross the wire as numbers, clock times and dates as
  strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request structs carry validator tags checked in the handlers; settings
  additionally pass through wage.WageSettings.Validate, which remains the
  engine's authority on configuration errors.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/vaktlogg/wage-engine/wage"
)

// =============================================================================
// SHIFTS
// =============================================================================

// ShiftDTO is a shift with its engine-computed breakdown.
type ShiftDTO struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	PauseMin   int     `json:"pause_min"`
	TemplateID *string `json:"template_id,omitempty"`
	Note       string  `json:"note,omitempty"`

	TotalHours       float64 `json:"total_hours"`
	BaseHours        float64 `json:"base_hours"`
	EveningHours     float64 `json:"evening_hours"`
	NightHours       float64 `json:"night_hours"`
	WeekendHours     float64 `json:"weekend_hours"`
	HolidayHours     float64 `json:"holiday_hours"`
	Overtime50Hours  float64 `json:"overtime_50_hours"`
	Overtime100Hours float64 `json:"overtime_100_hours"`
	GrossPay         float64 `json:"gross_pay"`
	IsHoliday        bool    `json:"is_holiday"`

	CreatedAt string `json:"created_at,omitempty"`
}

// ShiftRequest creates or replaces a shift's raw fields.
type ShiftRequest struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string  `json:"start_time" validate:"required"`
	EndTime    string  `json:"end_time" validate:"required"`
	PauseMin   int     `json:"pause_min" validate:"gte=0"`
	TemplateID *string `json:"template_id"`
	Note       string  `json:"note"`
}

func (r ShiftRequest) toInput() wage.ShiftInput {
	in := wage.ShiftInput{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		PauseMin:  r.PauseMin,
		Note:      r.Note,
	}
	if r.TemplateID != nil {
		id := wage.TemplateID(*r.TemplateID)
		in.TemplateID = &id
	}
	return in
}

func toShiftDTO(s *wage.Shift) ShiftDTO {
	dto := ShiftDTO{
		ID:               string(s.ID),
		Date:             s.Date,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		PauseMin:         s.PauseMin,
		Note:             s.Note,
		TotalHours:       s.Calc.Hours.Total.Float64(),
		BaseHours:        s.Calc.Hours.Base.Float64(),
		EveningHours:     s.Calc.Hours.Evening.Float64(),
		NightHours:       s.Calc.Hours.Night.Float64(),
		WeekendHours:     s.Calc.Hours.Weekend.Float64(),
		HolidayHours:     s.Calc.Hours.Holiday.Float64(),
		Overtime50Hours:  s.Calc.Hours.Overtime50.Float64(),
		Overtime100Hours: s.Calc.Hours.Overtime100.Float64(),
		GrossPay:         s.Calc.GrossPay.Float64(),
		IsHoliday:        s.Calc.IsHoliday,
	}
	if s.TemplateID != nil {
		id := string(*s.TemplateID)
		dto.TemplateID = &id
	}
	if !s.CreatedAt.IsZero() {
		dto.CreatedAt = s.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return dto
}

// =============================================================================
// CALCULATOR
// =============================================================================

// MonthResultDTO is the live month calculation.
type MonthResultDTO struct {
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	ShiftsCount int      `json:"shifts_count"`
	Holidays    []string `json:"holidays"`

	TotalHours       float64 `json:"total_hours"`
	BaseHours        float64 `json:"base_hours"`
	EveningHours     float64 `json:"evening_hours"`
	NightHours       float64 `json:"night_hours"`
	WeekendHours     float64 `json:"weekend_hours"`
	HolidayHours     float64 `json:"holiday_hours"`
	Overtime50Hours  float64 `json:"overtime_50_hours"`
	Overtime100Hours float64 `json:"overtime_100_hours"`

	GrossPay         float64 `json:"gross_pay"`
	TaxDeduction     float64 `json:"tax_deduction"`
	NetPay           float64 `json:"net_pay"`
	HolidayPayBase   float64 `json:"holiday_pay_base"`
	HolidayPayEarned float64 `json:"holiday_pay_earned"`
}

func toMonthResultDTO(r *wage.MonthCalcResult) MonthResultDTO {
	return MonthResultDTO{
		Year:             r.Year,
		Month:            int(r.Month),
		ShiftsCount:      r.ShiftsCount,
		Holidays:         r.Holidays,
		TotalHours:       r.Hours.Total.Float64(),
		BaseHours:        r.Hours.Base.Float64(),
		EveningHours:     r.Hours.Evening.Float64(),
		NightHours:       r.Hours.Night.Float64(),
		WeekendHours:     r.Hours.Weekend.Float64(),
		HolidayHours:     r.Hours.Holiday.Float64(),
		Overtime50Hours:  r.Hours.Overtime50.Float64(),
		Overtime100Hours: r.Hours.Overtime100.Float64(),
		GrossPay:         r.GrossPay.Float64(),
		TaxDeduction:     r.TaxDeduction.Float64(),
		NetPay:           r.NetPay.Float64(),
		HolidayPayBase:   r.HolidayPayBase.Float64(),
		HolidayPayEarned: r.HolidayPayEarned.Float64(),
	}
}

// SaveMonthRequest asks for a fresh snapshot of (year, month).
type SaveMonthRequest struct {
	Year  int `json:"year" validate:"required,gte=1000,lte=9999"`
	Month int `json:"month" validate:"required,gte=1,lte=12"`
}

// SummaryDTO is a saved month snapshot.
type SummaryDTO struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`

	TotalHours       float64 `json:"total_hours"`
	BaseHours        float64 `json:"base_hours"`
	EveningHours     float64 `json:"evening_hours"`
	NightHours       float64 `json:"night_hours"`
	WeekendHours     float64 `json:"weekend_hours"`
	HolidayHours     float64 `json:"holiday_hours"`
	Overtime50Hours  float64 `json:"overtime_50_hours"`
	Overtime100Hours float64 `json:"overtime_100_hours"`

	GrossPay         float64 `json:"gross_pay"`
	TaxDeduction     float64 `json:"tax_deduction"`
	NetPay           float64 `json:"net_pay"`
	HolidayPayBase   float64 `json:"holiday_pay_base"`
	HolidayPayEarned float64 `json:"holiday_pay_earned"`

	IsLocked  bool   `json:"is_locked"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toSummaryDTO(s *wage.MonthSummary) SummaryDTO {
	return SummaryDTO{
		ID:               string(s.ID),
		Year:             s.Year,
		Month:            int(s.Month),
		TotalHours:       s.Hours.Total.Float64(),
		BaseHours:        s.Hours.Base.Float64(),
		EveningHours:     s.Hours.Evening.Float64(),
		NightHours:       s.Hours.Night.Float64(),
		WeekendHours:     s.Hours.Weekend.Float64(),
		HolidayHours:     s.Hours.Holiday.Float64(),
		Overtime50Hours:  s.Hours.Overtime50.Float64(),
		Overtime100Hours: s.Hours.Overtime100.Float64(),
		GrossPay:         s.GrossPay.Float64(),
		TaxDeduction:     s.TaxDeduction.Float64(),
		NetPay:           s.NetPay.Float64(),
		HolidayPayBase:   s.HolidayPayBase.Float64(),
		HolidayPayEarned: s.HolidayPayEarned.Float64(),
		IsLocked:         s.IsLocked,
		CreatedAt:        s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// =============================================================================
// SETTINGS
// =============================================================================

// CustomAllowanceDTO is one named extra, applied in list order.
type CustomAllowanceDTO struct {
	Name  string  `json:"name" validate:"required"`
	Type  string  `json:"type" validate:"required,oneof=flat percent"`
	Value float64 `json:"value" validate:"gte=0"`
}

// SettingsDTO carries the full wage configuration both ways.
type SettingsDTO struct {
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`

	EveningAllowanceType  string  `json:"evening_allowance_type" validate:"oneof=flat percent"`
	EveningAllowanceValue float64 `json:"evening_allowance_value" validate:"gte=0"`
	EveningFrom           string  `json:"evening_from" validate:"required"`
	EveningTo             string  `json:"evening_to" validate:"required"`

	NightAllowanceType  string  `json:"night_allowance_type" validate:"oneof=flat percent"`
	NightAllowanceValue float64 `json:"night_allowance_value" validate:"gte=0"`
	NightFrom           string  `json:"night_from" validate:"required"`
	NightTo             string  `json:"night_to" validate:"required"`

	WeekendAllowanceType  string  `json:"weekend_allowance_type" validate:"oneof=flat percent"`
	WeekendAllowanceValue float64 `json:"weekend_allowance_value" validate:"gte=0"`
	HolidayAllowanceType  string  `json:"holiday_allowance_type" validate:"oneof=flat percent"`
	HolidayAllowanceValue float64 `json:"holiday_allowance_value" validate:"gte=0"`

	CustomAllowances []CustomAllowanceDTO `json:"custom_allowances" validate:"dive"`

	OvertimeDailyThreshold  float64 `json:"overtime_daily_threshold" validate:"gte=0"`
	OvertimeWeeklyThreshold float64 `json:"overtime_weekly_threshold" validate:"gte=0"`
	Overtime50Rate          float64 `json:"overtime_50_rate" validate:"gte=1"`
	Overtime100Rate         float64 `json:"overtime_100_rate" validate:"gte=1"`

	DefaultPauseMin int  `json:"default_pause_min" validate:"gte=0"`
	PaidPause       bool `json:"paid_pause"`

	RoundingMinutes int    `json:"rounding_minutes" validate:"gte=0"`
	RoundingMethod  string `json:"rounding_method" validate:"oneof=nearest up down"`

	TaxPercent        float64 `json:"tax_percent" validate:"gte=0"`
	HolidayPayPercent float64 `json:"holiday_pay_percent" validate:"gte=0"`
}

func (d SettingsDTO) toSettings() (*wage.WageSettings, error) {
	eveningFrom, err := wage.ParseClock(d.EveningFrom)
	if err != nil {
		return nil, err
	}
	eveningTo, err := wage.ParseClock(d.EveningTo)
	if err != nil {
		return nil, err
	}
	nightFrom, err := wage.ParseClock(d.NightFrom)
	if err != nil {
		return nil, err
	}
	nightTo, err := wage.ParseClock(d.NightTo)
	if err != nil {
		return nil, err
	}

	ws := &wage.WageSettings{
		HourlyRate:              decimal.NewFromFloat(d.HourlyRate),
		Evening:                 wage.Allowance{Type: wage.AllowanceType(d.EveningAllowanceType), Value: decimal.NewFromFloat(d.EveningAllowanceValue)},
		EveningWindow:           wage.TimeWindow{From: eveningFrom, To: eveningTo},
		Night:                   wage.Allowance{Type: wage.AllowanceType(d.NightAllowanceType), Value: decimal.NewFromFloat(d.NightAllowanceValue)},
		NightWindow:             wage.TimeWindow{From: nightFrom, To: nightTo},
		Weekend:                 wage.Allowance{Type: wage.AllowanceType(d.WeekendAllowanceType), Value: decimal.NewFromFloat(d.WeekendAllowanceValue)},
		Holiday:                 wage.Allowance{Type: wage.AllowanceType(d.HolidayAllowanceType), Value: decimal.NewFromFloat(d.HolidayAllowanceValue)},
		OvertimeDailyThreshold:  decimal.NewFromFloat(d.OvertimeDailyThreshold),
		OvertimeWeeklyThreshold: decimal.NewFromFloat(d.OvertimeWeeklyThreshold),
		Overtime50Rate:          decimal.NewFromFloat(d.Overtime50Rate),
		Overtime100Rate:         decimal.NewFromFloat(d.Overtime100Rate),
		DefaultPauseMin:         d.DefaultPauseMin,
		PaidPause:               d.PaidPause,
		RoundingMinutes:         d.RoundingMinutes,
		RoundingMethod:          wage.RoundingMethod(d.RoundingMethod),
		TaxPercent:              decimal.NewFromFloat(d.TaxPercent),
		HolidayPayPercent:       decimal.NewFromFloat(d.HolidayPayPercent),
	}
	for _, c := range d.CustomAllowances {
		ws.Custom = append(ws.Custom, wage.CustomAllowance{
			Name:  c.Name,
			Type:  wage.AllowanceType(c.Type),
			Value: decimal.NewFromFloat(c.Value),
		})
	}
	return ws, nil
}

func toSettingsDTO(ws *wage.WageSettings) SettingsDTO {
	d := SettingsDTO{
		HourlyRate:              ws.HourlyRate.InexactFloat64(),
		EveningAllowanceType:    string(ws.Evening.Type),
		EveningAllowanceValue:   ws.Evening.Value.InexactFloat64(),
		EveningFrom:             ws.EveningWindow.From.String(),
		EveningTo:               ws.EveningWindow.To.String(),
		NightAllowanceType:      string(ws.Night.Type),
		NightAllowanceValue:     ws.Night.Value.InexactFloat64(),
		NightFrom:               ws.NightWindow.From.String(),
		NightTo:                 ws.NightWindow.To.String(),
		WeekendAllowanceType:    string(ws.Weekend.Type),
		WeekendAllowanceValue:   ws.Weekend.Value.InexactFloat64(),
		HolidayAllowanceType:    string(ws.Holiday.Type),
		HolidayAllowanceValue:   ws.Holiday.Value.InexactFloat64(),
		OvertimeDailyThreshold:  ws.OvertimeDailyThreshold.InexactFloat64(),
		OvertimeWeeklyThreshold: ws.OvertimeWeeklyThreshold.InexactFloat64(),
		Overtime50Rate:          ws.Overtime50Rate.InexactFloat64(),
		Overtime100Rate:         ws.Overtime100Rate.InexactFloat64(),
		DefaultPauseMin:         ws.DefaultPauseMin,
		PaidPause:               ws.PaidPause,
		RoundingMinutes:         ws.RoundingMinutes,
		RoundingMethod:          string(ws.RoundingMethod),
		TaxPercent:              ws.TaxPercent.InexactFloat64(),
		HolidayPayPercent:       ws.HolidayPayPercent.InexactFloat64(),
	}
	for _, c := range ws.Custom {
		d.CustomAllowances = append(d.CustomAllowances, CustomAllowanceDTO{
			Name:  c.Name,
			Type:  string(c.Type),
			Value: c.Value.InexactFloat64(),
		})
	}
	return d
}
