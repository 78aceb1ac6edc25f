package queries

import (
	"context"
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"
	"rental-front/internal/pkg/clock"
	"rental-front/internal/usecase/shared"

	"github.com/google/uuid"
)

type SearchParams struct {
	StartDate time.Time
	EndDate   time.Time
	Order     car.SortOrder
}

// SearchQueries drives the availability search flow. Search validates,
// queries upstream and persists the results; Restore and ChangeDates
// serve entirely from the session-scoped state without network calls.
type SearchQueries interface {
	Search(ctx context.Context, visitorID uuid.UUID, params SearchParams) (*SearchView, error)
	Restore(ctx context.Context, visitorID uuid.UUID, order car.SortOrder) (*SearchView, error)
	ChangeDates(ctx context.Context, visitorID uuid.UUID, start, end time.Time) (time.Time, time.Time, error)
}

type searchQueriesImpl struct {
	cars  shared.CarGateway
	state shared.SearchStateStore
	clock clock.Clock
}

func NewSearchQueries(cars shared.CarGateway, state shared.SearchStateStore, clk clock.Clock) SearchQueries {
	return &searchQueriesImpl{
		cars:  cars,
		state: state,
		clock: clk,
	}
}

// Search runs one validated availability query. Validation failures never
// reach the network; an upstream failure replaces the results view rather
// than keeping stale ones.
func (q *searchQueriesImpl) Search(ctx context.Context, visitorID uuid.UUID, params SearchParams) (*SearchView, error) {
	if err := rental.ValidateRange(params.StartDate, params.EndDate, clock.Today(q.clock)); err != nil {
		return nil, err
	}

	// Sort order is passed as a hint; the local stable sort is what the
	// visitor actually sees.
	found, err := q.cars.Available(ctx, params.StartDate, params.EndDate, params.Order)
	if err != nil {
		return nil, err
	}

	if err := q.state.SaveResults(ctx, visitorID, rental.SearchState{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Cars:      found,
	}); err != nil {
		return nil, err
	}

	return q.buildView(params.StartDate, params.EndDate, params.Order, true, found), nil
}

// Restore rebuilds the search view from the stored state, re-sorted for
// the requested order. Never fetches: a sort-order change on cached
// results must not trigger a new network call.
func (q *searchQueriesImpl) Restore(ctx context.Context, visitorID uuid.UUID, order car.SortOrder) (*SearchView, error) {
	st, err := q.state.LoadSearch(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return &SearchView{Order: order}, nil
	}
	return q.buildView(st.StartDate, st.EndDate, order, st.Searched, st.Cars), nil
}

// ChangeDates persists a date-field change immediately. When the start
// date moves so the stored end date would exceed the 14-day cap, the end
// date is silently clamped instead of failing validation.
func (q *searchQueriesImpl) ChangeDates(ctx context.Context, visitorID uuid.UUID, start, end time.Time) (time.Time, time.Time, error) {
	end = rental.ClampEnd(start, end)
	if err := q.state.SaveDates(ctx, visitorID, start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (q *searchQueriesImpl) buildView(start, end time.Time, order car.SortOrder, searched bool, cars []car.Car) *SearchView {
	sorted := car.SortByPrice(cars, order)
	views := make([]CarView, 0, len(sorted))
	for _, c := range sorted {
		views = append(views, CarView{
			Car:        c,
			TotalPrice: rental.TotalPrice(c.Price, start, end),
		})
	}
	return &SearchView{
		StartDate: start,
		EndDate:   end,
		Days:      rental.Days(start, end),
		Order:     order,
		Searched:  searched,
		Cars:      views,
	}
}
