/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements wage.ShiftStore, wage.SettingsStore and wage.SummaryStore using
  SQLite. In production, the same patterns apply to PostgreSQL - only minor
  SQL dialect differences.

KEY TABLES:
  shifts:          Raw shift fields plus the engine-owned derived columns
  wage_settings:   One row per user, the single active configuration
  month_summaries: Saved snapshots, unique per (user_id, year, month)

LOCK INVARIANT:
  The summary lock transition is a single UPDATE statement, so two
  concurrent lock calls cannot both transition and a save cannot land after
  a lock: UpsertSummary updates only WHERE is_locked = 0 and reports
  ErrMonthLocked when the row exists but was not updated.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time.

USAGE:
  store, err := sqlite.New("./data/vaktlogg.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - wage/store.go:        Interface definitions
  - wage/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/vaktlogg/wage-engine/wage"
)

// Store implements all three storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: avoids SQLITE_BUSY under write contention and keeps
	// ":memory:" databases from being one-per-pool-connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		template_id TEXT,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		pause_min INTEGER NOT NULL DEFAULT 0,
		note TEXT,

		-- Derived columns, owned by the engine, stored for quick display
		total_hours TEXT NOT NULL DEFAULT '0',
		base_hours TEXT NOT NULL DEFAULT '0',
		evening_hours TEXT NOT NULL DEFAULT '0',
		night_hours TEXT NOT NULL DEFAULT '0',
		weekend_hours TEXT NOT NULL DEFAULT '0',
		holiday_hours TEXT NOT NULL DEFAULT '0',
		overtime_50_hours TEXT NOT NULL DEFAULT '0',
		overtime_100_hours TEXT NOT NULL DEFAULT '0',
		gross_pay TEXT NOT NULL DEFAULT '0',
		is_holiday INTEGER NOT NULL DEFAULT 0,

		created_at TEXT NOT NULL
	);

	-- Hot path: month queries scan by user and date range
	CREATE INDEX IF NOT EXISTS idx_shifts_user_date
		ON shifts(user_id, date);

	CREATE TABLE IF NOT EXISTS wage_settings (
		user_id TEXT PRIMARY KEY,
		config_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS month_summaries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,

		total_hours TEXT NOT NULL DEFAULT '0',
		base_hours TEXT NOT NULL DEFAULT '0',
		evening_hours TEXT NOT NULL DEFAULT '0',
		night_hours TEXT NOT NULL DEFAULT '0',
		weekend_hours TEXT NOT NULL DEFAULT '0',
		holiday_hours TEXT NOT NULL DEFAULT '0',
		overtime_50_hours TEXT NOT NULL DEFAULT '0',
		overtime_100_hours TEXT NOT NULL DEFAULT '0',

		gross_pay TEXT NOT NULL DEFAULT '0',
		tax_deduction TEXT NOT NULL DEFAULT '0',
		net_pay TEXT NOT NULL DEFAULT '0',
		holiday_pay_base TEXT NOT NULL DEFAULT '0',
		holiday_pay_earned TEXT NOT NULL DEFAULT '0',

		is_locked INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,

		UNIQUE(user_id, year, month)
	);

	CREATE INDEX IF NOT EXISTS idx_summaries_user
		ON month_summaries(user_id, year DESC, month DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SHIFT STORE
// =============================================================================

const shiftColumns = `id, user_id, template_id, date, start_time, end_time, pause_min, note,
	total_hours, base_hours, evening_hours, night_hours, weekend_hours, holiday_hours,
	overtime_50_hours, overtime_100_hours, gross_pay, is_holiday, created_at`

func (s *Store) ListRange(ctx context.Context, userID wage.UserID, from, to time.Time) ([]wage.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+shiftColumns+` FROM shifts
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date, start_time`,
		string(userID), wage.FormatDate(from), wage.FormatDate(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []wage.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sh)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, userID wage.UserID, id wage.ShiftID) (*wage.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT `+shiftColumns+` FROM shifts WHERE id = ? AND user_id = ?`,
		string(id), string(userID))
	sh, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wage.ErrShiftNotFound
	}
	return sh, err
}

func (s *Store) Put(ctx context.Context, sh *wage.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sh.ID == "" {
		sh.ID = wage.ShiftID(uuid.NewString())
		sh.CreatedAt = time.Now().UTC()
	}
	var templateID any
	if sh.TemplateID != nil {
		templateID = string(*sh.TemplateID)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (`+shiftColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			template_id = excluded.template_id,
			date = excluded.date,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			pause_min = excluded.pause_min,
			note = excluded.note,
			total_hours = excluded.total_hours,
			base_hours = excluded.base_hours,
			evening_hours = excluded.evening_hours,
			night_hours = excluded.night_hours,
			weekend_hours = excluded.weekend_hours,
			holiday_hours = excluded.holiday_hours,
			overtime_50_hours = excluded.overtime_50_hours,
			overtime_100_hours = excluded.overtime_100_hours,
			gross_pay = excluded.gross_pay,
			is_holiday = excluded.is_holiday`,
		string(sh.ID), string(sh.UserID), templateID,
		sh.Date, sh.StartTime, sh.EndTime, sh.PauseMin, sh.Note,
		sh.Calc.Hours.Total.Value.String(), sh.Calc.Hours.Base.Value.String(),
		sh.Calc.Hours.Evening.Value.String(), sh.Calc.Hours.Night.Value.String(),
		sh.Calc.Hours.Weekend.Value.String(), sh.Calc.Hours.Holiday.Value.String(),
		sh.Calc.Hours.Overtime50.Value.String(), sh.Calc.Hours.Overtime100.Value.String(),
		sh.Calc.GrossPay.Value.String(), boolToInt(sh.Calc.IsHoliday),
		sh.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) Delete(ctx context.Context, userID wage.UserID, id wage.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE id = ? AND user_id = ?`, string(id), string(userID))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return wage.ErrShiftNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(r rowScanner) (*wage.Shift, error) {
	var (
		sh         wage.Shift
		templateID sql.NullString
		note       sql.NullString
		hours      [8]string
		gross      string
		isHoliday  int
		createdAt  string
	)
	err := r.Scan(&sh.ID, &sh.UserID, &templateID,
		&sh.Date, &sh.StartTime, &sh.EndTime, &sh.PauseMin, &note,
		&hours[0], &hours[1], &hours[2], &hours[3], &hours[4], &hours[5], &hours[6], &hours[7],
		&gross, &isHoliday, &createdAt)
	if err != nil {
		return nil, err
	}
	if templateID.Valid {
		id := wage.TemplateID(templateID.String)
		sh.TemplateID = &id
	}
	sh.Note = note.String

	var parsed [8]decimal.Decimal
	for i, h := range hours {
		if parsed[i], err = decimal.NewFromString(h); err != nil {
			return nil, fmt.Errorf("corrupt shift %s: %w", sh.ID, err)
		}
	}
	sh.Calc.Hours = wage.HoursBreakdown{
		Total:       wage.Hours{Value: parsed[0]},
		Base:        wage.Hours{Value: parsed[1]},
		Evening:     wage.Hours{Value: parsed[2]},
		Night:       wage.Hours{Value: parsed[3]},
		Weekend:     wage.Hours{Value: parsed[4]},
		Holiday:     wage.Hours{Value: parsed[5]},
		Overtime50:  wage.Hours{Value: parsed[6]},
		Overtime100: wage.Hours{Value: parsed[7]},
	}
	grossDec, err := decimal.NewFromString(gross)
	if err != nil {
		return nil, fmt.Errorf("corrupt shift %s: %w", sh.ID, err)
	}
	sh.Calc.GrossPay = wage.Money{Value: grossDec}
	sh.Calc.IsHoliday = isHoliday != 0
	sh.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &sh, nil
}

// =============================================================================
// SETTINGS STORE - One JSON document per user
// =============================================================================

// settingsJSON is the persisted form of wage.WageSettings. Decimals travel
// as strings to avoid float drift.
type settingsJSON struct {
	HourlyRate string `json:"hourly_rate"`

	EveningType  string `json:"evening_allowance_type"`
	EveningValue string `json:"evening_allowance_value"`
	EveningFrom  string `json:"evening_from"`
	EveningTo    string `json:"evening_to"`

	NightType  string `json:"night_allowance_type"`
	NightValue string `json:"night_allowance_value"`
	NightFrom  string `json:"night_from"`
	NightTo    string `json:"night_to"`

	WeekendType  string `json:"weekend_allowance_type"`
	WeekendValue string `json:"weekend_allowance_value"`
	HolidayType  string `json:"holiday_allowance_type"`
	HolidayValue string `json:"holiday_allowance_value"`

	Custom []customJSON `json:"custom_allowances"`

	OvertimeDailyThreshold  string `json:"overtime_daily_threshold"`
	OvertimeWeeklyThreshold string `json:"overtime_weekly_threshold"`
	Overtime50Rate          string `json:"overtime_50_rate"`
	Overtime100Rate         string `json:"overtime_100_rate"`

	DefaultPauseMin int  `json:"default_pause_min"`
	PaidPause       bool `json:"paid_pause"`

	RoundingMinutes int    `json:"rounding_minutes"`
	RoundingMethod  string `json:"rounding_method"`

	TaxPercent        string `json:"tax_percent"`
	HolidayPayPercent string `json:"holiday_pay_percent"`
}

type customJSON struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func encodeSettings(ws *wage.WageSettings) ([]byte, error) {
	doc := settingsJSON{
		HourlyRate:              ws.HourlyRate.String(),
		EveningType:             string(ws.Evening.Type),
		EveningValue:            ws.Evening.Value.String(),
		EveningFrom:             ws.EveningWindow.From.String(),
		EveningTo:               ws.EveningWindow.To.String(),
		NightType:               string(ws.Night.Type),
		NightValue:              ws.Night.Value.String(),
		NightFrom:               ws.NightWindow.From.String(),
		NightTo:                 ws.NightWindow.To.String(),
		WeekendType:             string(ws.Weekend.Type),
		WeekendValue:            ws.Weekend.Value.String(),
		HolidayType:             string(ws.Holiday.Type),
		HolidayValue:            ws.Holiday.Value.String(),
		OvertimeDailyThreshold:  ws.OvertimeDailyThreshold.String(),
		OvertimeWeeklyThreshold: ws.OvertimeWeeklyThreshold.String(),
		Overtime50Rate:          ws.Overtime50Rate.String(),
		Overtime100Rate:         ws.Overtime100Rate.String(),
		DefaultPauseMin:         ws.DefaultPauseMin,
		PaidPause:               ws.PaidPause,
		RoundingMinutes:         ws.RoundingMinutes,
		RoundingMethod:          string(ws.RoundingMethod),
		TaxPercent:              ws.TaxPercent.String(),
		HolidayPayPercent:       ws.HolidayPayPercent.String(),
	}
	for _, c := range ws.Custom {
		doc.Custom = append(doc.Custom, customJSON{Name: c.Name, Type: string(c.Type), Value: c.Value.String()})
	}
	return json.Marshal(doc)
}

func decodeSettings(data []byte) (*wage.WageSettings, error) {
	var doc settingsJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	dec := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	clock := func(s string) wage.ClockTime {
		c, _ := wage.ParseClock(s)
		return c
	}
	ws := &wage.WageSettings{
		HourlyRate:              dec(doc.HourlyRate),
		Evening:                 wage.Allowance{Type: wage.AllowanceType(doc.EveningType), Value: dec(doc.EveningValue)},
		EveningWindow:           wage.TimeWindow{From: clock(doc.EveningFrom), To: clock(doc.EveningTo)},
		Night:                   wage.Allowance{Type: wage.AllowanceType(doc.NightType), Value: dec(doc.NightValue)},
		NightWindow:             wage.TimeWindow{From: clock(doc.NightFrom), To: clock(doc.NightTo)},
		Weekend:                 wage.Allowance{Type: wage.AllowanceType(doc.WeekendType), Value: dec(doc.WeekendValue)},
		Holiday:                 wage.Allowance{Type: wage.AllowanceType(doc.HolidayType), Value: dec(doc.HolidayValue)},
		OvertimeDailyThreshold:  dec(doc.OvertimeDailyThreshold),
		OvertimeWeeklyThreshold: dec(doc.OvertimeWeeklyThreshold),
		Overtime50Rate:          dec(doc.Overtime50Rate),
		Overtime100Rate:         dec(doc.Overtime100Rate),
		DefaultPauseMin:         doc.DefaultPauseMin,
		PaidPause:               doc.PaidPause,
		RoundingMinutes:         doc.RoundingMinutes,
		RoundingMethod:          wage.RoundingMethod(doc.RoundingMethod),
		TaxPercent:              dec(doc.TaxPercent),
		HolidayPayPercent:       dec(doc.HolidayPayPercent),
	}
	for _, c := range doc.Custom {
		ws.Custom = append(ws.Custom, wage.CustomAllowance{Name: c.Name, Type: wage.AllowanceType(c.Type), Value: dec(c.Value)})
	}
	return ws, nil
}

func (s *Store) GetSettings(ctx context.Context, userID wage.UserID) (*wage.WageSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT config_json FROM wage_settings WHERE user_id = ?`, string(userID)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wage.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeSettings(data)
}

func (s *Store) PutSettings(ctx context.Context, userID wage.UserID, ws *wage.WageSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encodeSettings(ws)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wage_settings (user_id, config_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			config_json = excluded.config_json,
			updated_at = excluded.updated_at`,
		string(userID), data, time.Now().UTC().Format(time.RFC3339))
	return err
}

// =============================================================================
// SUMMARY STORE
// =============================================================================

const summaryColumns = `id, user_id, year, month,
	total_hours, base_hours, evening_hours, night_hours, weekend_hours, holiday_hours,
	overtime_50_hours, overtime_100_hours,
	gross_pay, tax_deduction, net_pay, holiday_pay_base, holiday_pay_earned,
	is_locked, created_at, updated_at`

func (s *Store) GetSummary(ctx context.Context, userID wage.UserID, year int, month time.Month) (*wage.MonthSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getSummary(ctx, userID, year, month)
}

func (s *Store) getSummary(ctx context.Context, userID wage.UserID, year int, month time.Month) (*wage.MonthSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+summaryColumns+` FROM month_summaries
		WHERE user_id = ? AND year = ? AND month = ?`,
		string(userID), year, int(month))
	return scanSummary(row)
}

func (s *Store) GetSummaryByID(ctx context.Context, userID wage.UserID, id wage.SummaryID) (*wage.MonthSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT `+summaryColumns+` FROM month_summaries WHERE id = ? AND user_id = ?`,
		string(id), string(userID))
	return scanSummary(row)
}

func (s *Store) ListSummaries(ctx context.Context, userID wage.UserID) ([]wage.MonthSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+summaryColumns+` FROM month_summaries
		WHERE user_id = ? ORDER BY year DESC, month DESC`, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []wage.MonthSummary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sum)
	}
	return out, rows.Err()
}

// UpsertSummary overwrites the user's summary for the month unless it is
// locked. The update targets only unlocked rows, so a save can never land
// after a lock.
func (s *Store) UpsertSummary(ctx context.Context, sum *wage.MonthSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE month_summaries SET
			total_hours = ?, base_hours = ?, evening_hours = ?, night_hours = ?,
			weekend_hours = ?, holiday_hours = ?, overtime_50_hours = ?, overtime_100_hours = ?,
			gross_pay = ?, tax_deduction = ?, net_pay = ?, holiday_pay_base = ?, holiday_pay_earned = ?,
			updated_at = ?
		WHERE user_id = ? AND year = ? AND month = ? AND is_locked = 0`,
		sum.Hours.Total.Value.String(), sum.Hours.Base.Value.String(),
		sum.Hours.Evening.Value.String(), sum.Hours.Night.Value.String(),
		sum.Hours.Weekend.Value.String(), sum.Hours.Holiday.Value.String(),
		sum.Hours.Overtime50.Value.String(), sum.Hours.Overtime100.Value.String(),
		sum.GrossPay.Value.String(), sum.TaxDeduction.Value.String(), sum.NetPay.Value.String(),
		sum.HolidayPayBase.Value.String(), sum.HolidayPayEarned.Value.String(),
		now.Format(time.RFC3339),
		string(sum.UserID), sum.Year, int(sum.Month))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n > 0 {
		existing, err := s.getSummary(ctx, sum.UserID, sum.Year, sum.Month)
		if err != nil {
			return err
		}
		*sum = *existing
		return nil
	}

	// No unlocked row was updated: either the month is locked, or no row
	// exists yet.
	_, err = s.getSummary(ctx, sum.UserID, sum.Year, sum.Month)
	if err == nil {
		// Row exists but was not updated, so it must be locked.
		return &wage.LockedMonthError{UserID: sum.UserID, Year: sum.Year, Month: sum.Month}
	}
	if !errors.Is(err, wage.ErrSummaryNotFound) {
		return err
	}

	sum.ID = wage.SummaryID(uuid.NewString())
	sum.IsLocked = false
	sum.CreatedAt = now
	sum.UpdatedAt = now
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO month_summaries (`+summaryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(sum.ID), string(sum.UserID), sum.Year, int(sum.Month),
		sum.Hours.Total.Value.String(), sum.Hours.Base.Value.String(),
		sum.Hours.Evening.Value.String(), sum.Hours.Night.Value.String(),
		sum.Hours.Weekend.Value.String(), sum.Hours.Holiday.Value.String(),
		sum.Hours.Overtime50.Value.String(), sum.Hours.Overtime100.Value.String(),
		sum.GrossPay.Value.String(), sum.TaxDeduction.Value.String(), sum.NetPay.Value.String(),
		sum.HolidayPayBase.Value.String(), sum.HolidayPayEarned.Value.String(),
		0, now.Format(time.RFC3339), now.Format(time.RFC3339))
	return err
}

// LockSummary is the one-way transition. The UPDATE is a single-statement
// compare-and-set; re-locking a locked summary changes nothing.
func (s *Store) LockSummary(ctx context.Context, userID wage.UserID, id wage.SummaryID) (*wage.MonthSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		UPDATE month_summaries SET is_locked = 1, updated_at = ?
		WHERE id = ? AND user_id = ? AND is_locked = 0`,
		time.Now().UTC().Format(time.RFC3339), string(id), string(userID))
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+summaryColumns+` FROM month_summaries WHERE id = ? AND user_id = ?`,
		string(id), string(userID))
	return scanSummary(row)
}

func scanSummary(r rowScanner) (*wage.MonthSummary, error) {
	var (
		sum       wage.MonthSummary
		month     int
		fields    [13]string
		isLocked  int
		createdAt string
		updatedAt string
	)
	err := r.Scan(&sum.ID, &sum.UserID, &sum.Year, &month,
		&fields[0], &fields[1], &fields[2], &fields[3], &fields[4], &fields[5],
		&fields[6], &fields[7], &fields[8], &fields[9], &fields[10], &fields[11], &fields[12],
		&isLocked, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wage.ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}
	sum.Month = time.Month(month)

	var parsed [13]decimal.Decimal
	for i, f := range fields {
		if parsed[i], err = decimal.NewFromString(f); err != nil {
			return nil, fmt.Errorf("corrupt summary %s: %w", sum.ID, err)
		}
	}
	sum.Hours = wage.HoursBreakdown{
		Total:       wage.Hours{Value: parsed[0]},
		Base:        wage.Hours{Value: parsed[1]},
		Evening:     wage.Hours{Value: parsed[2]},
		Night:       wage.Hours{Value: parsed[3]},
		Weekend:     wage.Hours{Value: parsed[4]},
		Holiday:     wage.Hours{Value: parsed[5]},
		Overtime50:  wage.Hours{Value: parsed[6]},
		Overtime100: wage.Hours{Value: parsed[7]},
	}
	sum.GrossPay = wage.Money{Value: parsed[8]}
	sum.TaxDeduction = wage.Money{Value: parsed[9]}
	sum.NetPay = wage.Money{Value: parsed[10]}
	sum.HolidayPayBase = wage.Money{Value: parsed[11]}
	sum.HolidayPayEarned = wage.Money{Value: parsed[12]}
	sum.IsLocked = isLocked != 0
	sum.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	sum.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &sum, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
