package request

import (
	"rental-front/internal/usecase/commands"
	"rental-front/internal/usecase/queries"
)

// ConfirmBookingRequest is the confirmation form submission. Dates arrive
// as the same strings the summary was prepared with.
type ConfirmBookingRequest struct {
	CarID         int64  `json:"carId" binding:"required"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	TermsAccepted bool   `json:"termsAccepted"`
}

func (r ConfirmBookingRequest) ToParams() commands.ConfirmParams {
	return commands.ConfirmParams{
		CarID:         r.CarID,
		StartDate:     parseDate(r.StartDate),
		EndDate:       parseDate(r.EndDate),
		TermsAccepted: r.TermsAccepted,
	}
}

// PrepareQuery binds the confirmation page's query parameters. All fields
// are optional; the stored search range fills the gaps.
type PrepareQuery struct {
	CarID     int64  `form:"carId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (r PrepareQuery) ToParams() queries.PrepareParams {
	return queries.PrepareParams{
		CarID:     r.CarID,
		StartDate: parseDate(r.StartDate),
		EndDate:   parseDate(r.EndDate),
	}
}
