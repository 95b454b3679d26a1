/*
store.go - Persistence interfaces for the engine's collaborators

PURPOSE:
  Defines the boundary between the pure computation and whatever persists
  shifts, settings and summaries. The engine performs no I/O itself; these
  interfaces are its only view of the outside world.

CONTRACTS:
  ShiftStore:    list shifts in a date range, write derived fields back.
  SettingsStore: single active settings version per user, no history.
  SummaryStore:  upsert-if-not-locked, and an atomic one-way lock transition
                 (two concurrent locks must not both transition; a save must
                 not land after a lock).

IMPLEMENTATIONS:
  - wage/store:   In-memory, for tests and dev
  - store/sqlite: Production SQLite
*/
package wage

import (
	"context"
	"time"
)

// ShiftStore persists shifts. Put writes raw and derived fields together;
// derived fields are only ever produced by the engine.
type ShiftStore interface {
	// ListRange returns the user's shifts with anchor date in [from, to],
	// ordered by date then start time.
	ListRange(ctx context.Context, userID UserID, from, to time.Time) ([]Shift, error)

	// Get returns one shift. ErrShiftNotFound if missing or not owned.
	Get(ctx context.Context, userID UserID, id ShiftID) (*Shift, error)

	// Put inserts or updates a shift. The store assigns ID on insert.
	Put(ctx context.Context, s *Shift) error

	// Delete removes a shift. ErrShiftNotFound if missing or not owned.
	Delete(ctx context.Context, userID UserID, id ShiftID) error
}

// SettingsStore persists the single active WageSettings per user.
type SettingsStore interface {
	// GetSettings returns the user's settings. ErrSettingsNotFound if none
	// saved yet.
	GetSettings(ctx context.Context, userID UserID) (*WageSettings, error)

	// PutSettings replaces the user's settings. Callers validate first.
	PutSettings(ctx context.Context, userID UserID, ws *WageSettings) error
}

// SummaryStore persists month summaries and owns the lock invariant.
type SummaryStore interface {
	// GetSummary returns the summary for (user, year, month).
	// ErrSummaryNotFound if none exists.
	GetSummary(ctx context.Context, userID UserID, year int, month time.Month) (*MonthSummary, error)

	// GetSummaryByID returns a summary by id. ErrSummaryNotFound if missing
	// or not owned by the user.
	GetSummaryByID(ctx context.Context, userID UserID, id SummaryID) (*MonthSummary, error)

	// ListSummaries returns the user's summaries, newest first.
	ListSummaries(ctx context.Context, userID UserID) ([]MonthSummary, error)

	// UpsertSummary creates or overwrites the summary for its
	// (user, year, month). Returns ErrMonthLocked without mutating anything
	// if the stored summary is locked. The store assigns ID on insert.
	UpsertSummary(ctx context.Context, s *MonthSummary) error

	// LockSummary atomically flips is_locked. Idempotent on an
	// already-locked summary. ErrSummaryNotFound if missing or not owned.
	LockSummary(ctx context.Context, userID UserID, id SummaryID) (*MonthSummary, error)
}
