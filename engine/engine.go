/*
Package engine drives the wage calculations against the stores.

PURPOSE:
  MonthAggregator and lifecycle layer: loads a snapshot of a user's shifts
  and settings, runs the pure computation in package wage, and manages the
  save/lock lifecycle of month summaries. This is the only package that
  touches both the computation and the stores.

LIFECYCLE (per user, year, month):
  UNSAVED --save--> SAVED --lock--> LOCKED (terminal)
  - save recomputes from live shifts at save time (never trusts a stale
    client-supplied result) and upserts; rejected once LOCKED.
  - lock is a one-way atomic transition owned by the SummaryStore;
    idempotent if already locked.
  - calculate always recomputes from live data and never mutates state.

CONCURRENCY:
  Mutations and month aggregation serialize per user; different users are
  fully independent. The lock transition itself is additionally atomic at
  the store.

SEE ALSO:
  - wage/month.go: The pure computation
  - wage/store.go: Store contracts
*/
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vaktlogg/wage-engine/wage"
)

// Engine wires the stores, the holiday calendar and the calculation policy.
type Engine struct {
	shifts    wage.ShiftStore
	settings  wage.SettingsStore
	summaries wage.SummaryStore
	calendar  wage.HolidayCalendar
	policy    wage.CalcPolicy

	mu    sync.Mutex
	users map[wage.UserID]*sync.Mutex
}

func New(shifts wage.ShiftStore, settings wage.SettingsStore, summaries wage.SummaryStore, cal wage.HolidayCalendar, policy wage.CalcPolicy) *Engine {
	return &Engine{
		shifts:    shifts,
		settings:  settings,
		summaries: summaries,
		calendar:  cal,
		policy:    policy,
		users:     make(map[wage.UserID]*sync.Mutex),
	}
}

// userLock returns the per-user mutex, creating it on first use.
func (e *Engine) userLock(userID wage.UserID) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.users[userID]
	if !ok {
		l = &sync.Mutex{}
		e.users[userID] = l
	}
	return l
}

// settingsFor returns the user's settings, falling back to defaults for
// users who have not saved any yet.
func (e *Engine) settingsFor(ctx context.Context, userID wage.UserID) (*wage.WageSettings, error) {
	ws, err := e.settings.GetSettings(ctx, userID)
	if errors.Is(err, wage.ErrSettingsNotFound) {
		return wage.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// =============================================================================
// CALCULATE - Read-only month view
// =============================================================================

// Calculate recomputes the month view from live shift data. No side effects.
func (e *Engine) Calculate(ctx context.Context, userID wage.UserID, year int, month time.Month) (*wage.MonthCalcResult, error) {
	ws, err := e.settingsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	first, last := wage.MonthRange(year, month)
	shifts, err := e.shifts.ListRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}
	return wage.CalculateMonth(shifts, ws, e.policy, e.calendar, year, month), nil
}

// =============================================================================
// SAVE / LOCK - Snapshot lifecycle
// =============================================================================

// Save computes a fresh month result and upserts it as the user's summary.
// Rejected with ErrMonthLocked once the month is locked.
func (e *Engine) Save(ctx context.Context, userID wage.UserID, year int, month time.Month) (*wage.MonthSummary, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	result, err := e.Calculate(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	summary := wage.NewMonthSummary(userID, result)
	if err := e.summaries.UpsertSummary(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// Lock flips a summary to locked. One-way, atomic at the store, idempotent
// on an already-locked summary.
func (e *Engine) Lock(ctx context.Context, userID wage.UserID, id wage.SummaryID) (*wage.MonthSummary, error) {
	return e.summaries.LockSummary(ctx, userID, id)
}

// Summaries lists the user's saved summaries, newest first.
func (e *Engine) Summaries(ctx context.Context, userID wage.UserID) ([]wage.MonthSummary, error) {
	return e.summaries.ListSummaries(ctx, userID)
}

// =============================================================================
// SHIFTS - Writes recompute derived fields
// =============================================================================

// CreateShift validates the raw fields, computes derived fields with the
// user's current settings and persists the shift.
func (e *Engine) CreateShift(ctx context.Context, userID wage.UserID, in wage.ShiftInput) (*wage.Shift, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := in.Validate(); err != nil {
		return nil, err
	}
	ws, err := e.settingsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := &wage.Shift{UserID: userID, ShiftInput: in}
	s.Calc = wage.RecomputeShift(s.ID, in, ws, e.policy, e.calendar)
	if err := e.shifts.Put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateShift replaces a shift's raw fields and recomputes derived ones.
func (e *Engine) UpdateShift(ctx context.Context, userID wage.UserID, id wage.ShiftID, in wage.ShiftInput) (*wage.Shift, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := in.Validate(); err != nil {
		return nil, err
	}
	s, err := e.shifts.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	ws, err := e.settingsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.ShiftInput = in
	s.Calc = wage.RecomputeShift(s.ID, in, ws, e.policy, e.calendar)
	if err := e.shifts.Put(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteShift removes a shift.
func (e *Engine) DeleteShift(ctx context.Context, userID wage.UserID, id wage.ShiftID) error {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return e.shifts.Delete(ctx, userID, id)
}

// ListShifts returns the user's shifts with anchor date in [from, to].
func (e *Engine) ListShifts(ctx context.Context, userID wage.UserID, from, to time.Time) ([]wage.Shift, error) {
	return e.shifts.ListRange(ctx, userID, from, to)
}

// =============================================================================
// SETTINGS - Validated writes, recompute stored shifts
// =============================================================================

// Settings returns the user's wage settings (defaults if none saved).
func (e *Engine) Settings(ctx context.Context, userID wage.UserID) (*wage.WageSettings, error) {
	return e.settingsFor(ctx, userID)
}

// PutSettings validates and stores new settings, then recomputes the
// derived fields of every stored shift so persisted values never reflect a
// stale configuration. Invalid settings are rejected before any write.
func (e *Engine) PutSettings(ctx context.Context, userID wage.UserID, ws *wage.WageSettings) error {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := ws.Validate(); err != nil {
		return err
	}
	if err := e.settings.PutSettings(ctx, userID, ws); err != nil {
		return err
	}

	// Sweep a generous range; shift stores are bounded per user.
	from := wage.Date(1, time.January, 1)
	to := wage.Date(9999, time.December, 31)
	shifts, err := e.shifts.ListRange(ctx, userID, from, to)
	if err != nil {
		return err
	}
	for i := range shifts {
		s := &shifts[i]
		s.Calc = wage.RecomputeShift(s.ID, s.ShiftInput, ws, e.policy, e.calendar)
		if err := e.shifts.Put(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
