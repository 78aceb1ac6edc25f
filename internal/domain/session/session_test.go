//go:build unit

package session_test

import (
	"net/url"
	"testing"

	"rental-front/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, session.RoleAdmin, session.ParseRole("ADMIN"))
	assert.Equal(t, session.RoleUser, session.ParseRole("USER"))
	assert.Equal(t, session.RoleUser, session.ParseRole(""))
	assert.Equal(t, session.RoleUser, session.ParseRole("admin"))
}

func TestPendingBookingTargets(t *testing.T) {
	t.Run("booking target carries the captured parameters", func(t *testing.T) {
		pb := session.PendingBooking{CarID: "7", StartDate: "2026-09-01", EndDate: "2026-09-04"}
		target := pb.BookingTarget()

		u, err := url.Parse(target)
		require.NoError(t, err)
		assert.Equal(t, "/booking-confirmation", u.Path)
		assert.Equal(t, "7", u.Query().Get("carId"))
		assert.Equal(t, "2026-09-01", u.Query().Get("startDate"))
		assert.Equal(t, "2026-09-04", u.Query().Get("endDate"))
	})

	t.Run("empty intent still resumes the page", func(t *testing.T) {
		assert.Equal(t, "/booking-confirmation", session.PendingBooking{}.BookingTarget())
	})

	t.Run("login target round-trips through the redirect parameter", func(t *testing.T) {
		pb := session.PendingBooking{CarID: "7", StartDate: "2026-09-01", EndDate: "2026-09-04"}
		target := pb.LoginTarget()

		u, err := url.Parse(target)
		require.NoError(t, err)
		assert.Equal(t, "/login", u.Path)
		assert.Equal(t, pb.BookingTarget(), u.Query().Get("redirect"))
	})
}
