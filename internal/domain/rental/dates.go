package rental

import (
	"math"
	"time"

	"rental-front/internal/pkg/errs"
)

// MaxRentalDays caps a rental at 14 days after the start date.
const MaxRentalDays = 14

// DateLayout is the calendar-date wire format used by the rental API.
const DateLayout = "2006-01-02"

// Days returns the number of billable rental days between start and end.
// A partial day counts as a full rental day, so the whole-day difference is
// rounded up. This is a business rule, not a rounding artifact.
// Returns 0 when either date is missing or end is not after start.
func Days(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// TotalPrice is the per-day price times the billable day count, rounded to
// the nearest whole currency unit. Returns 0 when the day count is 0.
func TotalPrice(pricePerDay float64, start, end time.Time) int64 {
	days := Days(start, end)
	if days == 0 {
		return 0
	}
	return int64(math.Round(pricePerDay * float64(days)))
}

// ValidateRange enforces the booking date rules at day granularity.
// The same rules gate both availability search and booking submission, so a
// search result can never become unbookable through validation drift.
func ValidateRange(start, end, today time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.ErrMissingDates
	}
	if dayFloor(start).Before(dayFloor(today)) {
		return errs.ErrStartInPast
	}
	if !end.After(start) {
		return errs.ErrEndNotAfterStart
	}
	if end.After(start.AddDate(0, 0, MaxRentalDays)) {
		return errs.ErrRangeTooLong
	}
	return nil
}

// ClampEnd pulls the end date back to the 14-day cap after the start date.
// Used when a stored range would exceed the cap after the start date moved;
// the adjustment is silent rather than a validation error.
func ClampEnd(start, end time.Time) time.Time {
	if start.IsZero() || end.IsZero() {
		return end
	}
	max := start.AddDate(0, 0, MaxRentalDays)
	if end.After(max) {
		return max
	}
	return end
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
