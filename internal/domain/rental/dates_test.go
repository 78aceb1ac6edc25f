//go:build unit

package rental_test

import (
	"testing"
	"time"

	"rental-front/internal/domain/rental"
	"rental-front/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		assert.Equal(t, 3, rental.Days(date(2026, 9, 1), date(2026, 9, 4)))
		assert.Equal(t, 1, rental.Days(date(2026, 9, 1), date(2026, 9, 2)))
		assert.Equal(t, 14, rental.Days(date(2026, 9, 1), date(2026, 9, 15)))
	})

	t.Run("partial day counts as a full day", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
		assert.Equal(t, 2, rental.Days(start, end))
	})

	t.Run("zero for missing or inverted range", func(t *testing.T) {
		assert.Equal(t, 0, rental.Days(time.Time{}, date(2026, 9, 4)))
		assert.Equal(t, 0, rental.Days(date(2026, 9, 1), time.Time{}))
		assert.Equal(t, 0, rental.Days(date(2026, 9, 4), date(2026, 9, 1)))
		assert.Equal(t, 0, rental.Days(date(2026, 9, 1), date(2026, 9, 1)))
	})
}

func TestTotalPrice(t *testing.T) {
	t.Run("price times days, rounded", func(t *testing.T) {
		assert.Equal(t, int64(2850), rental.TotalPrice(950, date(2026, 9, 1), date(2026, 9, 4)))
		assert.Equal(t, int64(1000), rental.TotalPrice(499.9, date(2026, 9, 1), date(2026, 9, 3)))
	})

	t.Run("zero when the range yields no days", func(t *testing.T) {
		assert.Equal(t, int64(0), rental.TotalPrice(950, date(2026, 9, 4), date(2026, 9, 1)))
		assert.Equal(t, int64(0), rental.TotalPrice(950, time.Time{}, time.Time{}))
	})
}

func TestValidateRange(t *testing.T) {
	today := date(2026, 8, 29)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid range", start: date(2026, 9, 1), end: date(2026, 9, 4)},
		{name: "start today is allowed", start: today, end: date(2026, 8, 30)},
		{name: "exactly 14 days is allowed", start: date(2026, 9, 1), end: date(2026, 9, 15)},
		{name: "missing start", end: date(2026, 9, 4), errIs: errs.ErrMissingDates},
		{name: "missing end", start: date(2026, 9, 1), errIs: errs.ErrMissingDates},
		{name: "start before today", start: date(2026, 8, 28), end: date(2026, 9, 4), errIs: errs.ErrStartInPast},
		{name: "end equals start", start: date(2026, 9, 1), end: date(2026, 9, 1), errIs: errs.ErrEndNotAfterStart},
		{name: "end before start", start: date(2026, 9, 4), end: date(2026, 9, 1), errIs: errs.ErrEndNotAfterStart},
		{name: "15 days is too long", start: date(2026, 9, 1), end: date(2026, 9, 16), errIs: errs.ErrRangeTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rental.ValidateRange(tc.start, tc.end, today)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("past check is day granular", func(t *testing.T) {
		// A start earlier the same day is still "today", not the past.
		now := time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC)
		start := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, rental.ValidateRange(start, date(2026, 8, 31), now))
	})
}

func TestClampEnd(t *testing.T) {
	t.Run("clamps past the cap", func(t *testing.T) {
		got := rental.ClampEnd(date(2026, 9, 1), date(2026, 9, 20))
		assert.Equal(t, date(2026, 9, 15), got)
	})

	t.Run("leaves a valid end alone", func(t *testing.T) {
		got := rental.ClampEnd(date(2026, 9, 1), date(2026, 9, 4))
		assert.Equal(t, date(2026, 9, 4), got)
	})

	t.Run("missing dates pass through", func(t *testing.T) {
		assert.True(t, rental.ClampEnd(time.Time{}, date(2026, 9, 20)).Equal(date(2026, 9, 20)))
		assert.True(t, rental.ClampEnd(date(2026, 9, 1), time.Time{}).IsZero())
	})
}
