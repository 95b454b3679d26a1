package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaktlogg/wage-engine/wage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

const user = wage.UserID("u1")

func sampleShift(date string) *wage.Shift {
	return &wage.Shift{
		UserID: user,
		ShiftInput: wage.ShiftInput{
			Date:      date,
			StartTime: "08:00",
			EndTime:   "16:00",
			PauseMin:  30,
			Note:      "day shift",
		},
		Calc: wage.ShiftCalc{
			Hours: wage.HoursBreakdown{
				Total: wage.NewHours(7.5),
				Base:  wage.NewHours(7.5),
			},
			GrossPay: wage.NewMoney(1500),
		},
	}
}

func TestShiftPutGetRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sh := sampleShift("2024-01-10")
	require.NoError(t, s.Put(ctx, sh))
	assert.NotEmpty(t, sh.ID, "insert assigns an id")

	got, err := s.Get(ctx, user, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, sh.Date, got.Date)
	assert.Equal(t, sh.Note, got.Note)
	assert.Equal(t, 30, got.PauseMin)
	assert.True(t, got.Calc.Hours.Total.Equal(wage.NewHours(7.5)), "decimal hours survive the TEXT column")
	assert.True(t, got.Calc.GrossPay.Equal(wage.NewMoney(1500)))
	assert.Nil(t, got.TemplateID)
}

func TestShiftPutUpdatesInPlace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sh := sampleShift("2024-01-10")
	require.NoError(t, s.Put(ctx, sh))

	sh.EndTime = "18:00"
	sh.Calc.GrossPay = wage.NewMoney(2000)
	require.NoError(t, s.Put(ctx, sh))

	got, err := s.Get(ctx, user, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, "18:00", got.EndTime)
	assert.True(t, got.Calc.GrossPay.Equal(wage.NewMoney(2000)))
}

func TestShiftListRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, d := range []string{"2024-01-15", "2024-01-05", "2024-02-01"} {
		require.NoError(t, s.Put(ctx, sampleShift(d)))
	}
	// Another user's shift must never leak into the range.
	other := sampleShift("2024-01-10")
	other.UserID = "u2"
	require.NoError(t, s.Put(ctx, other))

	got, err := s.ListRange(ctx, user, wage.Date(2024, time.January, 1), wage.Date(2024, time.January, 31))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-05", got[0].Date, "sorted by date")
	assert.Equal(t, "2024-01-15", got[1].Date)
}

func TestShiftDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sh := sampleShift("2024-01-10")
	require.NoError(t, s.Put(ctx, sh))

	require.NoError(t, s.Delete(ctx, user, sh.ID))
	_, err := s.Get(ctx, user, sh.ID)
	assert.ErrorIs(t, err, wage.ErrShiftNotFound)

	assert.ErrorIs(t, s.Delete(ctx, user, sh.ID), wage.ErrShiftNotFound)
}

func TestSettingsRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetSettings(ctx, user)
	assert.ErrorIs(t, err, wage.ErrSettingsNotFound)

	ws := wage.DefaultSettings()
	ws.HourlyRate = decimal.NewFromFloat(215.50)
	ws.Night = wage.Allowance{Type: wage.AllowancePercent, Value: decimal.NewFromInt(40)}
	ws.Custom = []wage.CustomAllowance{
		{Name: "cold storage", Type: wage.AllowanceFlat, Value: decimal.NewFromInt(5)},
	}
	require.NoError(t, s.PutSettings(ctx, user, ws))

	got, err := s.GetSettings(ctx, user)
	require.NoError(t, err)
	assert.True(t, got.HourlyRate.Equal(ws.HourlyRate))
	assert.Equal(t, wage.AllowancePercent, got.Night.Type)
	assert.Equal(t, ws.NightWindow, got.NightWindow)
	require.Len(t, got.Custom, 1)
	assert.Equal(t, "cold storage", got.Custom[0].Name)
	require.NoError(t, got.Validate(), "stored settings decode to a valid configuration")
}

func sampleSummary(year int, month time.Month) *wage.MonthSummary {
	return &wage.MonthSummary{
		UserID:   user,
		Year:     year,
		Month:    month,
		Hours:    wage.HoursBreakdown{Total: wage.NewHours(160)},
		GrossPay: wage.NewMoney(32000),
		NetPay:   wage.NewMoney(24000),
	}
}

func TestSummaryUpsertAndLock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sum := sampleSummary(2024, time.January)
	require.NoError(t, s.UpsertSummary(ctx, sum))
	assert.NotEmpty(t, sum.ID)
	firstID := sum.ID

	// Re-saving the same month updates the existing row.
	again := sampleSummary(2024, time.January)
	again.GrossPay = wage.NewMoney(33000)
	require.NoError(t, s.UpsertSummary(ctx, again))
	assert.Equal(t, firstID, again.ID)
	assert.True(t, again.GrossPay.Equal(wage.NewMoney(33000)))

	// Lock, then verify a save can no longer land.
	locked, err := s.LockSummary(ctx, user, firstID)
	require.NoError(t, err)
	assert.True(t, locked.IsLocked)

	rejected := sampleSummary(2024, time.January)
	err = s.UpsertSummary(ctx, rejected)
	require.ErrorIs(t, err, wage.ErrMonthLocked)

	// Locking twice is idempotent.
	relocked, err := s.LockSummary(ctx, user, firstID)
	require.NoError(t, err)
	assert.True(t, relocked.IsLocked)
	assert.Equal(t, locked.UpdatedAt, relocked.UpdatedAt, "second lock does not touch the row")
}

func TestSummaryLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetSummary(ctx, user, 2024, time.January)
	assert.ErrorIs(t, err, wage.ErrSummaryNotFound)

	for _, m := range []time.Month{time.January, time.March, time.February} {
		require.NoError(t, s.UpsertSummary(ctx, sampleSummary(2024, m)))
	}

	got, err := s.GetSummary(ctx, user, 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month)

	byID, err := s.GetSummaryByID(ctx, user, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, byID.ID)

	_, err = s.GetSummaryByID(ctx, "someone-else", got.ID)
	assert.ErrorIs(t, err, wage.ErrSummaryNotFound, "summaries are scoped per user")

	list, err := s.ListSummaries(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, time.March, list[0].Month, "newest first")
	assert.Equal(t, time.January, list[2].Month)
}

func TestLockUnknownSummary(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LockSummary(context.Background(), user, "missing")
	assert.ErrorIs(t, err, wage.ErrSummaryNotFound)
}
