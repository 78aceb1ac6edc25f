package rental

import (
	"time"

	"rental-front/internal/domain/car"
)

// SearchState is the visitor's last availability search: the chosen date
// range and the result set computed for it. It survives page reloads
// within a browsing session and is superseded by each new search.
type SearchState struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Searched  bool      `json:"searched"`
	Cars      []car.Car `json:"cars"`
}
