package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaktlogg/wage-engine/calendar"
	"github.com/vaktlogg/wage-engine/wage"
	"github.com/vaktlogg/wage-engine/wage/store"
)

func newTestEngine() *Engine {
	mem := store.NewMemory()
	return New(mem, mem, mem, calendar.New(), wage.DefaultCalcPolicy())
}

func input(date, start, end string, pause int) wage.ShiftInput {
	return wage.ShiftInput{Date: date, StartTime: start, EndTime: end, PauseMin: pause}
}

const user = wage.UserID("u1")

func TestCreateShiftComputesDerivedFields(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	s, err := e.CreateShift(ctx, user, input("2024-01-10", "08:00", "16:00", 30))
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "7.5000", s.Calc.Hours.Total.String())
	assert.Equal(t, "1500.00", s.Calc.GrossPay.String(), "7.5h at default rate 200")
	assert.False(t, s.Calc.IsHoliday)
}

func TestCreateShiftRejectsInvalidInput(t *testing.T) {
	e := newTestEngine()

	_, err := e.CreateShift(context.Background(), user, input("2024-01-10", "26:00", "16:00", 0))
	require.Error(t, err)
	assert.True(t, wage.IsClientError(err))
}

func TestUpdateShiftRecomputes(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	s, err := e.CreateShift(ctx, user, input("2024-01-10", "08:00", "16:00", 0))
	require.NoError(t, err)

	updated, err := e.UpdateShift(ctx, user, s.ID, input("2024-01-10", "08:00", "12:00", 0))
	require.NoError(t, err)
	assert.Equal(t, "4.0000", updated.Calc.Hours.Total.String())
	assert.Equal(t, "800.00", updated.Calc.GrossPay.String())
}

func TestUpdateShiftWrongUser(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	s, err := e.CreateShift(ctx, user, input("2024-01-10", "08:00", "16:00", 0))
	require.NoError(t, err)

	_, err = e.UpdateShift(ctx, "someone-else", s.ID, input("2024-01-10", "08:00", "12:00", 0))
	assert.True(t, wage.IsNotFound(err), "shifts are scoped per user")
}

func TestCalculateIsReadOnly(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	_, err := e.CreateShift(ctx, user, input("2024-01-10", "08:00", "16:00", 0))
	require.NoError(t, err)

	r1, err := e.Calculate(ctx, user, 2024, time.January)
	require.NoError(t, err)
	r2, err := e.Calculate(ctx, user, 2024, time.January)
	require.NoError(t, err)

	assert.True(t, r1.GrossPay.Equal(r2.GrossPay))
	assert.Equal(t, 1, r1.ShiftsCount)

	// Calculating never creates a summary.
	summaries, err := e.Summaries(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSaveLockLifecycle(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	_, err := e.CreateShift(ctx, user, input("2024-01-10", "08:00", "16:00", 0))
	require.NoError(t, err)

	// Save creates the summary from a fresh calculation.
	sum, err := e.Save(ctx, user, 2024, time.January)
	require.NoError(t, err)
	assert.False(t, sum.IsLocked)
	assert.Equal(t, "1600.00", sum.GrossPay.String())

	// Re-saving while unlocked overwrites in place.
	_, err = e.CreateShift(ctx, user, input("2024-01-11", "08:00", "16:00", 0))
	require.NoError(t, err)
	sum2, err := e.Save(ctx, user, 2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, sum.ID, sum2.ID)
	assert.Equal(t, "3200.00", sum2.GrossPay.String())

	// Lock is one-way.
	locked, err := e.Lock(ctx, user, sum2.ID)
	require.NoError(t, err)
	assert.True(t, locked.IsLocked)

	// A save after lock is rejected, and the summary is unchanged.
	_, err = e.Save(ctx, user, 2024, time.January)
	require.ErrorIs(t, err, wage.ErrMonthLocked)

	// Locking again is a no-op, not an error.
	again, err := e.Lock(ctx, user, sum2.ID)
	require.NoError(t, err)
	assert.True(t, again.IsLocked)
}

func TestLockUnknownSummary(t *testing.T) {
	e := newTestEngine()

	_, err := e.Lock(context.Background(), user, "missing")
	assert.ErrorIs(t, err, wage.ErrSummaryNotFound)
}

func TestSettingsDefaultsWhenUnsaved(t *testing.T) {
	e := newTestEngine()

	ws, err := e.Settings(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "200", ws.HourlyRate.String())
}

func TestPutSettingsRejectsInvalid(t *testing.T) {
	e := newTestEngine()

	ws := wage.DefaultSettings()
	ws.Overtime50Rate = decimal.NewFromFloat(0.5)
	err := e.PutSettings(context.Background(), user, ws)
	require.ErrorIs(t, err, wage.ErrInvalidSettings)
}

func TestPutSettingsRecomputesStoredShifts(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	s, err := e.CreateShift(ctx, user, input("2024-01-10", "08:00", "16:00", 0))
	require.NoError(t, err)
	assert.Equal(t, "1600.00", s.Calc.GrossPay.String())

	// Doubling the rate must reprice the already stored shift.
	ws := wage.DefaultSettings()
	ws.HourlyRate = decimal.NewFromInt(400)
	require.NoError(t, e.PutSettings(ctx, user, ws))

	shifts, err := e.ListShifts(ctx, user, wage.Date(2024, time.January, 1), wage.Date(2024, time.January, 31))
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "3200.00", shifts[0].Calc.GrossPay.String())
}

func TestSummariesNewestFirst(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	for _, month := range []time.Month{time.January, time.March, time.February} {
		_, err := e.Save(ctx, user, 2024, month)
		require.NoError(t, err)
	}

	summaries, err := e.Summaries(ctx, user)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, time.March, summaries[0].Month)
	assert.Equal(t, time.February, summaries[1].Month)
	assert.Equal(t, time.January, summaries[2].Month)
}
