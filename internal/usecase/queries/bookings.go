package queries

import (
	"context"

	"rental-front/internal/domain/rental"
	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/clock"
	"rental-front/internal/usecase/shared"
)

type BookingListQueries interface {
	MyBookings(ctx context.Context, sess session.AuthSession) (*BookingsView, error)
}

type bookingListQueriesImpl struct {
	rentals shared.RentalGateway
	clock   clock.Clock
}

func NewBookingListQueries(rentals shared.RentalGateway, clk clock.Clock) BookingListQueries {
	return &bookingListQueriesImpl{rentals: rentals, clock: clk}
}

// MyBookings fetches the customer's bookings and groups them by effective
// status (rental.Categorize owns the precedence rule).
func (q *bookingListQueriesImpl) MyBookings(ctx context.Context, sess session.AuthSession) (*BookingsView, error) {
	bookings, err := q.rentals.MyBookings(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	today := clock.Today(q.clock)
	view := &BookingsView{}
	for _, b := range bookings {
		// Stamp the effective status so the grouped entries carry it even
		// when the server omitted one.
		b.Status = rental.Categorize(b, today)
		switch b.Status {
		case rental.StatusActive:
			view.Active = append(view.Active, b)
		case rental.StatusCompleted:
			view.Completed = append(view.Completed, b)
		case rental.StatusCancelled:
			view.Cancelled = append(view.Cancelled, b)
		default:
			view.Confirmed = append(view.Confirmed, b)
		}
	}
	return view, nil
}
