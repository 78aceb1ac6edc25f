package response

import (
	"rental-front/internal/domain/rental"
	"rental-front/internal/usecase/queries"
)

type BookingResponse struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	TotalPrice        float64 `json:"totalPrice"`
	TotalPriceDisplay string  `json:"totalPriceDisplay"`
	Car               CarResponse `json:"car"`
}

// BookingsResponse groups the customer's bookings by effective status,
// upcoming first.
type BookingsResponse struct {
	Confirmed []BookingResponse `json:"confirmed"`
	Active    []BookingResponse `json:"active"`
	Completed []BookingResponse `json:"completed"`
	Cancelled []BookingResponse `json:"cancelled"`
}

func FromBookingsView(view *queries.BookingsView) *BookingsResponse {
	return &BookingsResponse{
		Confirmed: fromBookings(view.Confirmed),
		Active:    fromBookings(view.Active),
		Completed: fromBookings(view.Completed),
		Cancelled: fromBookings(view.Cancelled),
	}
}

func fromBookings(items []rental.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, BookingResponse{
			ID:                b.ID,
			Status:            string(b.Status),
			StartDate:         b.StartDate.Format(rental.DateLayout),
			EndDate:           b.EndDate.Format(rental.DateLayout),
			TotalPrice:        b.TotalPrice,
			TotalPriceDisplay: rental.FormatPrice(b.TotalPrice) + " kr",
			Car:               FromCar(b.Car),
		})
	}
	return out
}
