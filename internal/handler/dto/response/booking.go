package response

import (
	"rental-front/internal/domain/rental"
	"rental-front/internal/usecase/queries"
)

// BookingSummaryResponse backs the confirmation page: the car, the
// validated range, the derived price and the customer identity.
type BookingSummaryResponse struct {
	Car               CarResponse      `json:"car"`
	Customer          CustomerResponse `json:"customer"`
	StartDate         string           `json:"startDate"`
	EndDate           string           `json:"endDate"`
	Days              int              `json:"days"`
	TotalPrice        int64            `json:"totalPrice"`
	TotalPriceDisplay string           `json:"totalPriceDisplay"`
}

func FromBookingSummary(view *queries.BookingSummaryView) *BookingSummaryResponse {
	return &BookingSummaryResponse{
		Car:               FromCar(view.Car),
		Customer:          FromCustomer(view.Customer),
		StartDate:         view.StartDate.Format(rental.DateLayout),
		EndDate:           view.EndDate.Format(rental.DateLayout),
		Days:              view.Days,
		TotalPrice:        view.TotalPrice,
		TotalPriceDisplay: rental.FormatPrice(float64(view.TotalPrice)) + " kr",
	}
}

// BookingConfirmationResponse is the receipt shown after a successful
// submission.
type BookingConfirmationResponse struct {
	BookingNumber     string `json:"bookingNumber"`
	CarBrand          string `json:"carBrand"`
	CarModel          string `json:"carModel"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	TotalPrice        float64 `json:"totalPrice"`
	TotalPriceDisplay string `json:"totalPriceDisplay"`
}

func FromConfirmation(conf *rental.BookingConfirmation) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		BookingNumber:     conf.BookingNumber,
		CarBrand:          conf.CarBrand,
		CarModel:          conf.CarModel,
		StartDate:         conf.StartDate.Format(rental.DateLayout),
		EndDate:           conf.EndDate.Format(rental.DateLayout),
		TotalPrice:        conf.TotalPrice,
		TotalPriceDisplay: rental.FormatPrice(conf.TotalPrice) + " kr",
	}
}
