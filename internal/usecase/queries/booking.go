package queries

import (
	"context"
	"strconv"
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/domain/rental"
	"rental-front/internal/domain/session"
	"rental-front/internal/pkg/clock"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AuthRequiredError is a control-flow signal, not a fault: the visitor
// must log in before booking, and RedirectTo preserves the intent across
// that navigation. errors.Is(err, errs.ErrAuthRequired) matches it.
type AuthRequiredError struct {
	RedirectTo string
}

func (e *AuthRequiredError) Error() string {
	return "authentication required"
}

func (e *AuthRequiredError) Unwrap() error {
	return errs.ErrAuthRequired
}

// PrepareParams carries the raw request parameters. Dates may be zero;
// the stored search range is the fallback.
type PrepareParams struct {
	CarID     int64
	StartDate time.Time
	EndDate   time.Time
}

type BookingQueries interface {
	Prepare(ctx context.Context, visitorID uuid.UUID, params PrepareParams) (*BookingSummaryView, error)
}

type bookingQueriesImpl struct {
	cars      shared.CarGateway
	customers shared.CustomerGateway
	sessions  shared.SessionStore
	search    shared.SearchStateStore
	pending   shared.PendingBookingStore
	clock     clock.Clock
}

func NewBookingQueries(
	cars shared.CarGateway,
	customers shared.CustomerGateway,
	sessions shared.SessionStore,
	search shared.SearchStateStore,
	pending shared.PendingBookingStore,
	clk clock.Clock,
) BookingQueries {
	return &bookingQueriesImpl{
		cars:      cars,
		customers: customers,
		sessions:  sessions,
		search:    search,
		pending:   pending,
		clock:     clk,
	}
}

// Prepare gates on authentication, then assembles the confirmation
// summary. The session probe always completes before any auth decision.
// Without a session the intent is captured and the login redirect is the
// terminal outcome; nothing below the gate executes.
func (q *bookingQueriesImpl) Prepare(ctx context.Context, visitorID uuid.UUID, params PrepareParams) (*BookingSummaryView, error) {
	sess, err := q.sessions.Current(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	if sess == nil {
		pb := pendingFromParams(params)
		if err := q.pending.SavePending(ctx, visitorID, pb); err != nil {
			return nil, err
		}
		return nil, &AuthRequiredError{RedirectTo: pb.LoginTarget()}
	}

	// Reaching this point supersedes any captured intent.
	if err := q.pending.ClearPending(ctx, visitorID); err != nil {
		return nil, err
	}

	start, end, err := q.resolveRange(ctx, visitorID, params)
	if err != nil {
		return nil, err
	}
	if err := rental.ValidateRange(start, end, clock.Today(q.clock)); err != nil {
		return nil, err
	}

	// Car and customer are independent fetches; both must resolve before
	// the summary exists, and teardown cancels whichever is in flight.
	var (
		foundCar *car.Car
		customer *rental.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		foundCar, err = q.cars.FindByID(gctx, params.CarID)
		return err
	})
	g.Go(func() error {
		var err error
		customer, err = q.customers.Me(gctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BookingSummaryView{
		Car:        *foundCar,
		Customer:   *customer,
		StartDate:  start,
		EndDate:    end,
		Days:       rental.Days(start, end),
		TotalPrice: rental.TotalPrice(foundCar.Price, start, end),
	}, nil
}

func (q *bookingQueriesImpl) resolveRange(ctx context.Context, visitorID uuid.UUID, params PrepareParams) (time.Time, time.Time, error) {
	start, end := params.StartDate, params.EndDate
	if !start.IsZero() && !end.IsZero() {
		return start, end, nil
	}

	st, err := q.search.LoadSearch(ctx, visitorID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if st != nil {
		if start.IsZero() {
			start = st.StartDate
		}
		if end.IsZero() {
			end = st.EndDate
		}
	}
	return start, end, nil
}

func pendingFromParams(params PrepareParams) session.PendingBooking {
	pb := session.PendingBooking{}
	if params.CarID > 0 {
		pb.CarID = strconv.FormatInt(params.CarID, 10)
	}
	if !params.StartDate.IsZero() {
		pb.StartDate = params.StartDate.Format(rental.DateLayout)
	}
	if !params.EndDate.IsZero() {
		pb.EndDate = params.EndDate.Format(rental.DateLayout)
	}
	return pb
}
