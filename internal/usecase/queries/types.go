package queries

import (
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"
)

// Read models (DTO for read side)

// CarView is a catalog car enriched with the total for the active range.
type CarView struct {
	Car        car.Car
	TotalPrice int64
}

type SearchView struct {
	StartDate time.Time
	EndDate   time.Time
	Days      int
	Order     car.SortOrder
	Searched  bool
	Cars      []CarView
}

// BookingSummaryView is everything the confirmation page shows before the
// visitor submits: the car, the validated range with derived pricing, and
// the customer identity.
type BookingSummaryView struct {
	Car        car.Car
	Customer   rental.Customer
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	TotalPrice int64
}

// BookingsView groups the customer's bookings by effective status.
type BookingsView struct {
	Confirmed []rental.Booking
	Active    []rental.Booking
	Completed []rental.Booking
	Cancelled []rental.Booking
}
