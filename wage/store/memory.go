// Package store provides in-memory implementations of the persistence
// interfaces, for tests and development.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vaktlogg/wage-engine/wage"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements ShiftStore, SettingsStore and SummaryStore behind one
// mutex, which also gives Lock/Upsert the required check-and-set atomicity.
type Memory struct {
	mu        sync.RWMutex
	shifts    map[wage.ShiftID]wage.Shift
	settings  map[wage.UserID]wage.WageSettings
	summaries map[wage.SummaryID]wage.MonthSummary
	seq       int
	now       func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		shifts:    make(map[wage.ShiftID]wage.Shift),
		settings:  make(map[wage.UserID]wage.WageSettings),
		summaries: make(map[wage.SummaryID]wage.MonthSummary),
		now:       time.Now,
	}
}

func (m *Memory) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

// =============================================================================
// SHIFT STORE
// =============================================================================

func (m *Memory) ListRange(_ context.Context, userID wage.UserID, from, to time.Time) ([]wage.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []wage.Shift
	for _, s := range m.shifts {
		if s.UserID != userID {
			continue
		}
		day, err := wage.ParseDate(s.Date)
		if err != nil {
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *Memory) Get(_ context.Context, userID wage.UserID, id wage.ShiftID) (*wage.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.shifts[id]
	if !ok || s.UserID != userID {
		return nil, wage.ErrShiftNotFound
	}
	return &s, nil
}

func (m *Memory) Put(_ context.Context, s *wage.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = wage.ShiftID(m.nextID("shift"))
		s.CreatedAt = m.now().UTC()
	}
	m.shifts[s.ID] = *s
	return nil
}

func (m *Memory) Delete(_ context.Context, userID wage.UserID, id wage.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.shifts[id]
	if !ok || s.UserID != userID {
		return wage.ErrShiftNotFound
	}
	delete(m.shifts, id)
	return nil
}

// =============================================================================
// SETTINGS STORE
// =============================================================================

func (m *Memory) GetSettings(_ context.Context, userID wage.UserID) (*wage.WageSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ws, ok := m.settings[userID]
	if !ok {
		return nil, wage.ErrSettingsNotFound
	}
	return &ws, nil
}

func (m *Memory) PutSettings(_ context.Context, userID wage.UserID, ws *wage.WageSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings[userID] = *ws
	return nil
}

// =============================================================================
// SUMMARY STORE
// =============================================================================

func (m *Memory) GetSummary(_ context.Context, userID wage.UserID, year int, month time.Month) (*wage.MonthSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.summaries {
		if s.UserID == userID && s.Year == year && s.Month == month {
			out := s
			return &out, nil
		}
	}
	return nil, wage.ErrSummaryNotFound
}

func (m *Memory) GetSummaryByID(_ context.Context, userID wage.UserID, id wage.SummaryID) (*wage.MonthSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.summaries[id]
	if !ok || s.UserID != userID {
		return nil, wage.ErrSummaryNotFound
	}
	out := s
	return &out, nil
}

func (m *Memory) ListSummaries(_ context.Context, userID wage.UserID) ([]wage.MonthSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []wage.MonthSummary
	for _, s := range m.summaries {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func (m *Memory) UpsertSummary(_ context.Context, s *wage.MonthSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.summaries {
		if existing.UserID == s.UserID && existing.Year == s.Year && existing.Month == s.Month {
			if existing.IsLocked {
				return &wage.LockedMonthError{UserID: s.UserID, Year: s.Year, Month: s.Month}
			}
			s.ID = id
			s.CreatedAt = existing.CreatedAt
			s.UpdatedAt = m.now().UTC()
			m.summaries[id] = *s
			return nil
		}
	}

	s.ID = wage.SummaryID(m.nextID("summary"))
	s.CreatedAt = m.now().UTC()
	s.UpdatedAt = s.CreatedAt
	m.summaries[s.ID] = *s
	return nil
}

func (m *Memory) LockSummary(_ context.Context, userID wage.UserID, id wage.SummaryID) (*wage.MonthSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.summaries[id]
	if !ok || s.UserID != userID {
		return nil, wage.ErrSummaryNotFound
	}
	if !s.IsLocked {
		s.IsLocked = true
		s.UpdatedAt = m.now().UTC()
		m.summaries[id] = s
	}
	out := s
	return &out, nil
}
