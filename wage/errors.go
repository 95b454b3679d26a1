/*
errors.go - Centralized error types for the wage engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The store and API layers wrap these errors with additional context.

ERROR CATEGORIES:
  1. Configuration errors - Invalid WageSettings, rejected at write time
  2. Lifecycle errors     - Locked-month conflicts
  3. Not-found errors     - Unknown user/shift/summary

All engine errors are deterministic functions of input state; the engine
performs no I/O, so there is no transient/retryable class here. Retries
belong to the store layer.

USAGE:
  if errors.Is(err, wage.ErrMonthLocked) {
      // reject the save, do not retry
  }
*/
package wage

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMonthLocked is returned when a save or recompute targets a month
	// whose summary has been locked. The operation is rejected, never retried.
	ErrMonthLocked = errors.New("month summary is locked")

	// ErrSummaryNotFound is returned when a summary id does not exist or is
	// not owned by the caller.
	ErrSummaryNotFound = errors.New("month summary not found")

	// ErrShiftNotFound is returned when a shift id does not exist for the user.
	ErrShiftNotFound = errors.New("shift not found")

	// ErrSettingsNotFound is returned by the settings store when a user has
	// no saved wage settings yet. The engine falls back to defaults.
	ErrSettingsNotFound = errors.New("wage settings not found")

	// ErrInvalidSettings is returned when wage settings fail validation.
	// Invalid configurations are rejected at write time; the engine never
	// runs with one.
	ErrInvalidSettings = errors.New("invalid wage settings")

	// ErrInvalidShift is returned when raw shift fields are malformed.
	ErrInvalidShift = errors.New("invalid shift")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// SettingsError reports which settings field failed validation and why.
type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid wage settings: %s: %s", e.Field, e.Reason)
}

func (e *SettingsError) Unwrap() error { return ErrInvalidSettings }

// LockedMonthError identifies which month rejected a write.
type LockedMonthError struct {
	UserID UserID
	Year   int
	Month  time.Month
}

func (e *LockedMonthError) Error() string {
	return fmt.Sprintf("month %d-%02d is locked for user %s", e.Year, e.Month, e.UserID)
}

func (e *LockedMonthError) Unwrap() error { return ErrMonthLocked }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSummaryNotFound) ||
		errors.Is(err, ErrShiftNotFound) ||
		errors.Is(err, ErrSettingsNotFound)
}

// IsClientError returns true if the error is due to invalid client input or
// a rejected lifecycle transition.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSettings) ||
		errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrMonthLocked)
}
