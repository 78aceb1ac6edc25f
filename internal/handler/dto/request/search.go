package request

import (
	"time"

	"rental-front/internal/domain/rental"
)

// SearchRequest carries the raw date strings from the search form.
// An unparsable date is treated the same as a missing one, so parsing
// yields a zero time and validation downstream reports it.
type SearchRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r SearchRequest) ParsedDates() (start, end time.Time) {
	return parseDate(r.StartDate), parseDate(r.EndDate)
}

type ChangeDatesRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r ChangeDatesRequest) ParsedDates() (start, end time.Time) {
	return parseDate(r.StartDate), parseDate(r.EndDate)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(rental.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
