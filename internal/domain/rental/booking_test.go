//go:build unit

package rental_test

import (
	"testing"
	"time"

	"rental-front/internal/domain/rental"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	today := date(2026, 8, 29)

	booking := func(status rental.BookingStatus, start, end time.Time) rental.Booking {
		return rental.Booking{Status: status, StartDate: start, EndDate: end}
	}

	t.Run("explicit server status wins over dates", func(t *testing.T) {
		// Dates say completed, the server says cancelled.
		b := booking(rental.StatusCancelled, date(2026, 8, 1), date(2026, 8, 5))
		assert.Equal(t, rental.StatusCancelled, rental.Categorize(b, today))

		// Dates say upcoming, the server says active.
		b = booking(rental.StatusActive, date(2026, 9, 10), date(2026, 9, 12))
		assert.Equal(t, rental.StatusActive, rental.Categorize(b, today))
	})

	t.Run("dates infer status when the server omits one", func(t *testing.T) {
		assert.Equal(t, rental.StatusCompleted,
			rental.Categorize(booking("", date(2026, 8, 1), date(2026, 8, 5)), today))
		assert.Equal(t, rental.StatusActive,
			rental.Categorize(booking("", date(2026, 8, 27), date(2026, 8, 31)), today))
		assert.Equal(t, rental.StatusConfirmed,
			rental.Categorize(booking("", date(2026, 9, 10), date(2026, 9, 12)), today))
	})

	t.Run("boundary days", func(t *testing.T) {
		// Starts today: active, not merely confirmed.
		assert.Equal(t, rental.StatusActive,
			rental.Categorize(booking("", today, date(2026, 9, 2)), today))
		// Ends today: still active.
		assert.Equal(t, rental.StatusActive,
			rental.Categorize(booking("", date(2026, 8, 25), today), today))
		// Ended yesterday: completed.
		assert.Equal(t, rental.StatusCompleted,
			rental.Categorize(booking("", date(2026, 8, 25), date(2026, 8, 28)), today))
	})

	t.Run("unknown status falls back to date inference", func(t *testing.T) {
		assert.Equal(t, rental.StatusConfirmed,
			rental.Categorize(booking("PENDING", date(2026, 9, 10), date(2026, 9, 12)), today))
	})
}
