package response

import (
	"time"

	"rental-front/internal/domain/rental"
	"rental-front/internal/usecase/queries"
)

// SearchCarResponse is a catalog car plus the derived total for the
// searched range.
type SearchCarResponse struct {
	CarResponse
	TotalPrice        int64  `json:"totalPrice"`
	TotalPriceDisplay string `json:"totalPriceDisplay"`
}

type SearchResponse struct {
	StartDate string              `json:"startDate,omitempty"`
	EndDate   string              `json:"endDate,omitempty"`
	Days      int                 `json:"days"`
	Sort      string              `json:"sort"`
	Searched  bool                `json:"searched"`
	Cars      []SearchCarResponse `json:"cars"`
}

func FromSearchView(view *queries.SearchView) *SearchResponse {
	resp := &SearchResponse{
		Days:     view.Days,
		Sort:     string(view.Order),
		Searched: view.Searched,
		Cars:     make([]SearchCarResponse, 0, len(view.Cars)),
	}
	if !view.StartDate.IsZero() {
		resp.StartDate = view.StartDate.Format(rental.DateLayout)
	}
	if !view.EndDate.IsZero() {
		resp.EndDate = view.EndDate.Format(rental.DateLayout)
	}
	for _, cv := range view.Cars {
		resp.Cars = append(resp.Cars, SearchCarResponse{
			CarResponse:       FromCar(cv.Car),
			TotalPrice:        cv.TotalPrice,
			TotalPriceDisplay: rental.FormatPrice(float64(cv.TotalPrice)) + " kr",
		})
	}
	return resp
}

type ChangeDatesResponse struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func FromDates(start, end time.Time) ChangeDatesResponse {
	var resp ChangeDatesResponse
	if !start.IsZero() {
		resp.StartDate = start.Format(rental.DateLayout)
	}
	if !end.IsZero() {
		resp.EndDate = end.Format(rental.DateLayout)
	}
	return resp
}
